package queries

// ConventionQueries requêtes SQL du domaine conventions
var ConventionQueries = struct {
	Create              string
	GetByID             string
	Update              string
	Delete              string
	List                string
	CountList           string
	GetByIDs            string
	CompanyAbbreviation string
}{
	Create: `
		INSERT INTO convention (
			service_id, company_id, code, designation_prestation,
			montant_ht, montant_global_ttc,
			montant_prise_charge_entreprise, montant_prise_charge_beneficiaire
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, service_id, company_id, code, designation_prestation,
			montant_ht, montant_global_ttc,
			montant_prise_charge_entreprise, montant_prise_charge_beneficiaire,
			created_at, updated_at
	`,

	GetByID: `
		SELECT cv.id, cv.service_id, cv.company_id, s.name, c.name,
			cv.code, cv.designation_prestation,
			cv.montant_ht, cv.montant_global_ttc,
			cv.montant_prise_charge_entreprise, cv.montant_prise_charge_beneficiaire,
			cv.created_at, cv.updated_at
		FROM convention cv
		LEFT JOIN services s ON s.id = cv.service_id
		LEFT JOIN companies c ON c.id = cv.company_id
		WHERE cv.id = $1
	`,

	Update: `
		UPDATE convention SET
			service_id = $2,
			company_id = $3,
			code = $4,
			designation_prestation = $5,
			montant_ht = $6,
			montant_global_ttc = $7,
			montant_prise_charge_entreprise = $8,
			montant_prise_charge_beneficiaire = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, service_id, company_id, code, designation_prestation,
			montant_ht, montant_global_ttc,
			montant_prise_charge_entreprise, montant_prise_charge_beneficiaire,
			created_at, updated_at
	`,

	Delete: `
		DELETE FROM convention WHERE id = $1
	`,

	List: `
		SELECT cv.id, cv.service_id, cv.company_id, s.name, c.name,
			cv.code, cv.designation_prestation,
			cv.montant_ht, cv.montant_global_ttc,
			cv.montant_prise_charge_entreprise, cv.montant_prise_charge_beneficiaire,
			cv.created_at, cv.updated_at
		FROM convention cv
		LEFT JOIN services s ON s.id = cv.service_id
		LEFT JOIN companies c ON c.id = cv.company_id
	`,

	CountList: `
		SELECT COUNT(*)
		FROM convention cv
		LEFT JOIN services s ON s.id = cv.service_id
		LEFT JOIN companies c ON c.id = cv.company_id
	`,

	// Chargement en lot des prestations d'une fiche navette
	GetByIDs: `
		SELECT cv.id, cv.service_id, cv.company_id, s.name, c.name,
			cv.code, cv.designation_prestation,
			cv.montant_ht, cv.montant_global_ttc,
			cv.montant_prise_charge_entreprise, cv.montant_prise_charge_beneficiaire,
			cv.created_at, cv.updated_at
		FROM convention cv
		LEFT JOIN services s ON s.id = cv.service_id
		LEFT JOIN companies c ON c.id = cv.company_id
		WHERE cv.id = ANY($1)
	`,

	CompanyAbbreviation: `
		SELECT COALESCE(abbreviation, 'UNKNOWN') FROM companies WHERE id = $1
	`,
}
