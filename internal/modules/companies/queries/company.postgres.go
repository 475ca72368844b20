package queries

// CompanyQueries requêtes SQL du domaine organismes
var CompanyQueries = struct {
	Create    string
	GetByID   string
	Update    string
	Delete    string
	List      string
	CountList string
	ListAll   string
}{
	Create: `
		INSERT INTO companies (
			name, abbreviation, augmentation, pourcentage_company, pourcentage_benefit
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, abbreviation, augmentation,
			pourcentage_company, pourcentage_benefit, created_at, updated_at
	`,

	GetByID: `
		SELECT id, name, abbreviation, augmentation,
			pourcentage_company, pourcentage_benefit, created_at, updated_at
		FROM companies
		WHERE id = $1
	`,

	Update: `
		UPDATE companies SET
			name = $2,
			abbreviation = $3,
			augmentation = $4,
			pourcentage_company = $5,
			pourcentage_benefit = $6,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, abbreviation, augmentation,
			pourcentage_company, pourcentage_benefit, created_at, updated_at
	`,

	Delete: `
		DELETE FROM companies WHERE id = $1
	`,

	List: `
		SELECT id, name, abbreviation, augmentation,
			pourcentage_company, pourcentage_benefit, created_at, updated_at
		FROM companies
	`,

	CountList: `
		SELECT COUNT(*) FROM companies
	`,

	// Liste complète pour les sélecteurs de formulaires
	ListAll: `
		SELECT id, name, abbreviation, augmentation,
			pourcentage_company, pourcentage_benefit, created_at, updated_at
		FROM companies
		ORDER BY name ASC
	`,
}
