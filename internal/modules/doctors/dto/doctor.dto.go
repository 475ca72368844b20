package dto

// DoctorDocument document de la collection doctors (store médical)
type DoctorDocument struct {
	ID               string  `bson:"_id"`
	UserID           string  `bson:"user_id"`
	SpecializationID *string `bson:"specialization_id"`
	Notes            *string `bson:"notes"`
}

// UserDocument compte utilisateur d'un médecin
type UserDocument struct {
	ID    string `bson:"_id"`
	Name  string `bson:"name"`
	Email string `bson:"email"`
}

// SpecializationDocument spécialisation médicale
type SpecializationDocument struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
}

// DoctorResponse médecin recollé avec son compte et sa spécialisation
type DoctorResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Specialization *string `json:"specialization"`
	Notes          *string `json:"notes"`
}
