package adopters

// Email y PhoneNum son opcionales en la base; NULL llega como "".
type Adopter struct {
	AdopterID int64
	Name      string
	Email     string
	PhoneNum  string
}
