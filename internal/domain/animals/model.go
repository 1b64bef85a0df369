package animals

// AvailableAnimal es un animal sin ninguna solicitud Accepted.
type AvailableAnimal struct {
	AnimalID int64  `db:"animalid"`
	Name     string `db:"animalname"`
	Breed    string `db:"breed"`
	BranchID int64  `db:"branchid"`
}

// Animal es un animal no adoptado con la especie resuelta desde AnimalInfo.
// Age es nil si la edad no está registrada.
type Animal struct {
	AnimalID int64
	Name     string
	Age      *int
	Species  string
	Breed    string
	BranchID int64
}

type VaccinationCount struct {
	AnimalID int64 `db:"animalid"`
	Count    int64 `db:"vaccinationcount"`
}
