package queries

// ServiceQueries requêtes SQL du domaine services médicaux
var ServiceQueries = struct {
	Create    string
	GetByID   string
	Update    string
	Delete    string
	List      string
	CountList string
	ListAll   string
}{
	Create: `
		INSERT INTO services (name, description, company_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, company_id, created_at, updated_at
	`,

	GetByID: `
		SELECT s.id, s.name, s.description, s.company_id, c.name,
			s.created_at, s.updated_at
		FROM services s
		LEFT JOIN companies c ON c.id = s.company_id
		WHERE s.id = $1
	`,

	Update: `
		UPDATE services SET
			name = $2,
			description = $3,
			company_id = $4,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, description, company_id, created_at, updated_at
	`,

	Delete: `
		DELETE FROM services WHERE id = $1
	`,

	List: `
		SELECT s.id, s.name, s.description, s.company_id, c.name,
			s.created_at, s.updated_at
		FROM services s
		LEFT JOIN companies c ON c.id = s.company_id
	`,

	CountList: `
		SELECT COUNT(*)
		FROM services s
		LEFT JOIN companies c ON c.id = s.company_id
	`,

	ListAll: `
		SELECT s.id, s.name, s.description, s.company_id, c.name,
			s.created_at, s.updated_at
		FROM services s
		LEFT JOIN companies c ON c.id = s.company_id
		ORDER BY s.name ASC
	`,
}
