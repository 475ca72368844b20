package queries

// FicheNavetteQueries requêtes SQL du domaine fiche navette
var FicheNavetteQueries = struct {
	AllocateNumber       string
	LastNumberOfYear     string
	Insert               string
	InsertItem           string
	InsertDoctorLink     string
	GetByID              string
	GetItems             string
	GetDoctorLinks       string
	DoctorLinksForFiches string
	Update               string
	UpdateStatus         string
	Delete               string
	List                 string
	CountList            string
}{
	// UPSERT sur le compteur annuel: la ligne de l'année est
	// verrouillée jusqu'au commit, ce qui sérialise les créations
	// concurrentes et garantit l'unicité du numéro
	AllocateNumber: `
		INSERT INTO fiche_navette_counters (year, last_number)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE
			SET last_number = fiche_navette_counters.last_number + 1
		RETURNING last_number
	`,

	// Dernier numéro émis pour une année, pour l'aperçu consultatif
	LastNumberOfYear: `
		SELECT fn_number
		FROM fiche_navettes
		WHERE fn_number LIKE '%/' || $1::text
		ORDER BY CAST(SPLIT_PART(fn_number, '/', 1) AS INTEGER) DESC
		LIMIT 1
	`,

	Insert: `
		INSERT INTO fiche_navettes (
			patient_id, insured_id, fiche_date, fn_number, family_auth,
			prise_en_charge_number, number_mutuelle,
			base_price, final_price, patient_share, organisme_share, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`,

	InsertItem: `
		INSERT INTO fiche_navette_items (fiche_navette_id, prestation_id)
		VALUES ($1, $2)
	`,

	InsertDoctorLink: `
		INSERT INTO doctor_fiche_navettes (fiche_navette_id, doctor_id)
		VALUES ($1, $2)
	`,

	GetByID: `
		SELECT id, patient_id, insured_id, fiche_date, fn_number,
			family_auth, prise_en_charge_number, number_mutuelle,
			base_price, final_price, patient_share, organisme_share,
			status, created_at, updated_at
		FROM fiche_navettes
		WHERE id = $1
	`,

	GetItems: `
		SELECT i.id, i.prestation_id, cv.code, cv.designation_prestation,
			cv.montant_ht, cv.montant_global_ttc,
			cv.montant_prise_charge_entreprise, c.name
		FROM fiche_navette_items i
		JOIN convention cv ON cv.id = i.prestation_id
		LEFT JOIN companies c ON c.id = cv.company_id
		WHERE i.fiche_navette_id = $1
		ORDER BY i.created_at ASC
	`,

	GetDoctorLinks: `
		SELECT doctor_id
		FROM doctor_fiche_navettes
		WHERE fiche_navette_id = $1
	`,

	// Liens médecins d'un lot de fiches, en un aller-retour
	DoctorLinksForFiches: `
		SELECT fiche_navette_id, doctor_id
		FROM doctor_fiche_navettes
		WHERE fiche_navette_id = ANY($1)
	`,

	Update: `
		UPDATE fiche_navettes SET
			insured_id = $2,
			fiche_date = $3,
			family_auth = $4,
			prise_en_charge_number = $5,
			number_mutuelle = $6,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, patient_id, insured_id, fiche_date, fn_number,
			family_auth, prise_en_charge_number, number_mutuelle,
			base_price, final_price, patient_share, organisme_share,
			status, created_at, updated_at
	`,

	UpdateStatus: `
		UPDATE fiche_navettes SET
			status = $2,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, patient_id, insured_id, fiche_date, fn_number,
			family_auth, prise_en_charge_number, number_mutuelle,
			base_price, final_price, patient_share, organisme_share,
			status, created_at, updated_at
	`,

	Delete: `
		DELETE FROM fiche_navettes WHERE id = $1
	`,

	List: `
		SELECT f.id, f.patient_id, f.insured_id, f.fiche_date, f.fn_number,
			f.family_auth, f.prise_en_charge_number, f.number_mutuelle,
			f.base_price, f.final_price, f.patient_share, f.organisme_share,
			f.status, f.created_at, f.updated_at
		FROM fiche_navettes f
	`,

	CountList: `
		SELECT COUNT(*) FROM fiche_navettes f
	`,
}
