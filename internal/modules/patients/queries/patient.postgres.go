package queries

// PatientQueries requêtes SQL pour la base patients (pool séparé)
var PatientQueries = struct {
	Create           string
	GetByID          string
	Update           string
	Delete           string
	List             string
	CountList        string
	Exists           string
	SearchIDs        string
	GetSummariesByID string
}{
	Create: `
		INSERT INTO patients (
			firstname, lastname, parent, phone, date_of_birth, gender, idnum, nss
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, firstname, lastname, parent, phone, date_of_birth,
			gender, idnum, nss, created_at, updated_at
	`,

	GetByID: `
		SELECT id, firstname, lastname, parent, phone, date_of_birth,
			gender, idnum, nss, created_at, updated_at
		FROM patients
		WHERE id = $1
	`,

	Update: `
		UPDATE patients SET
			firstname = $2,
			lastname = $3,
			parent = $4,
			phone = $5,
			date_of_birth = $6,
			gender = $7,
			idnum = $8,
			nss = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, firstname, lastname, parent, phone, date_of_birth,
			gender, idnum, nss, created_at, updated_at
	`,

	Delete: `
		DELETE FROM patients WHERE id = $1
	`,

	List: `
		SELECT id, firstname, lastname, parent, phone, date_of_birth,
			gender, idnum, nss, created_at, updated_at
		FROM patients
	`,

	CountList: `
		SELECT COUNT(*) FROM patients
	`,

	Exists: `
		SELECT EXISTS(SELECT 1 FROM patients WHERE id = $1)
	`,

	// Recherche plein-texte utilisée par la recherche de fiches : on ne
	// ramène que les ids, la jointure se fait côté base principale
	SearchIDs: `
		SELECT id
		FROM patients
		WHERE firstname ILIKE $1
			OR lastname ILIKE $1
			OR phone ILIKE $1
			OR idnum ILIKE $1
			OR nss ILIKE $1
		LIMIT 500
	`,

	GetSummariesByID: `
		SELECT id, firstname, lastname, phone, idnum
		FROM patients
		WHERE id = ANY($1)
	`,
}
