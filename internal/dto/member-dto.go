package dto

type AddressInput struct {
	Street        string `json:"street"`
	Number        string `json:"number"`
	Neighbourhood string `json:"neighbourhood"`
	Complement    string `json:"complement"`
	Zipcode       string `json:"zipcode"`
	CityID        uint   `json:"city_id"`
}

type MemberCreateRequest struct {
	Name             string `json:"name" validate:"required"`
	RG               string `json:"rg" validate:"required"`
	IssuingAuthority string `json:"issuing_authority" validate:"required"`
	CPF              string `json:"cpf" validate:"required"`
	NaturalityCityID uint   `json:"naturality_city_id" validate:"required"`
	MotherName       string `json:"mother_name"`
	FatherName       string `json:"father_name"`
	Profession       string `json:"profession" validate:"required"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	CellPhone        string `json:"cell_phone" validate:"required"`
	CRNumber         string `json:"cr_number" validate:"required"`
	IssuedAt         string `json:"issued_at" validate:"required"`
	BirthDate        string `json:"birth_date" validate:"required"`
	CRValidity       string `json:"cr_validity" validate:"required"`
	HealthIssues     string `json:"health_issues"`
	Gender           string `json:"gender" validate:"required,oneof=male female other"`
	MaritalStatus    string `json:"marital_status" validate:"required"`
	BloodTyping      string `json:"blood_typing" validate:"required"`
	Disabled         *bool  `json:"disabled,omitempty"`
	PlanID           uint   `json:"plan_id" validate:"required"`

	Addresses []AddressInput `json:"addresses"`
}

// MemberUpdateRequest is a partial update: nil pointer fields are left
// unchanged, including Disabled (tri-state: unset / false / true).
type MemberUpdateRequest struct {
	Name             *string `json:"name,omitempty"`
	RG               *string `json:"rg,omitempty"`
	IssuingAuthority *string `json:"issuing_authority,omitempty"`
	CPF              *string `json:"cpf,omitempty"`
	NaturalityCityID *uint   `json:"naturality_city_id,omitempty"`
	MotherName       *string `json:"mother_name,omitempty"`
	FatherName       *string `json:"father_name,omitempty"`
	Profession       *string `json:"profession,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	CellPhone        *string `json:"cell_phone,omitempty"`
	CRNumber         *string `json:"cr_number,omitempty"`
	IssuedAt         *string `json:"issued_at,omitempty"`
	BirthDate        *string `json:"birth_date,omitempty"`
	CRValidity       *string `json:"cr_validity,omitempty"`
	HealthIssues     *string `json:"health_issues,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	MaritalStatus    *string `json:"marital_status,omitempty"`
	BloodTyping      *string `json:"blood_typing,omitempty"`
	Disabled         *bool   `json:"disabled,omitempty"`
	PlanID           *uint   `json:"plan_id,omitempty"`

	Addresses []AddressInput `json:"addresses,omitempty"`
}

type StoredResponse struct {
	ID uint `json:"id"`
}

type DocumentResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}
