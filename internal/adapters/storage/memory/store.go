// Package memory implementa los repositorios sobre tablas en memoria. Se usa en modo dev
// (sin DB_HOST/DB_DSN) y en los tests end-to-end del router.
package memory

import (
	"context"
	"sync"
	"time"

	"shelter-admin/internal/domain/adopters"
	"shelter-admin/internal/domain/applications"
	"shelter-admin/internal/domain/demotable"
	"shelter-admin/internal/domain/events"
	"shelter-admin/internal/domain/shelters"
)

type animalRow struct {
	ID       int64
	Name     string
	Age      int
	Breed    string
	BranchID int64
}

type breedRow struct {
	Breed   string
	Species string
}

type vaccinationRow struct {
	AnimalID int64
	Type     string
	Date     time.Time
}

type donorRow struct {
	ID    int64
	Name  string
	Email string
}

type donationRow struct {
	DonorID  int64
	BranchID int64
	Amount   float64
	Date     time.Time
}

type attendRow struct {
	DonorID int64
	EventID int64
}

// Store guarda todas las tablas detrás de un único RWMutex.
type Store struct {
	mu sync.RWMutex

	animals      []animalRow
	breeds       []breedRow
	vaccinations []vaccinationRow
	applies      []applications.Application
	adopters     []adopters.Adopter
	donors       []donorRow
	donations    []donationRow
	attends      []attendRow
	shelters     []shelters.Shelter
	events       []events.Event

	demo      []demotable.Row
	demoReady bool
}

// NewStore devuelve un store vacío.
func NewStore() *Store {
	return &Store{}
}

// NewSeededStore devuelve un store con datos de ejemplo para modo dev.
func NewSeededStore() *Store {
	s := NewStore()
	s.seed()
	return s
}

// Ping siempre responde: no hay conexión que pueda caerse.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func date(v string) time.Time {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		panic(err)
	}
	return t
}

func (s *Store) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shelters = []shelters.Shelter{
		{BranchID: 1, PhoneNum: "6045550101", Address: "2366 Main Mall, Vancouver"},
		{BranchID: 2, PhoneNum: "6045550202", Address: "100 Granville St, Vancouver"},
		{BranchID: 3, PhoneNum: "2505550303", Address: "45 Fort St, Victoria, BC"},
	}
	s.breeds = []breedRow{
		{Breed: "Labrador", Species: "Dog"},
		{Breed: "Beagle", Species: "Dog"},
		{Breed: "Siamese", Species: "Cat"},
		{Breed: "Persian", Species: "Cat"},
		{Breed: "Holland Lop", Species: "Rabbit"},
	}
	s.animals = []animalRow{
		{ID: 1, Name: "Rex", Age: 3, Breed: "Labrador", BranchID: 1},
		{ID: 2, Name: "Milo", Age: 1, Breed: "Beagle", BranchID: 1},
		{ID: 3, Name: "Luna", Age: 2, Breed: "Siamese", BranchID: 1},
		{ID: 4, Name: "Nala", Age: 5, Breed: "Persian", BranchID: 2},
		{ID: 5, Name: "Coco", Age: 1, Breed: "Holland Lop", BranchID: 3},
		{ID: 6, Name: "Max", Age: 7, Breed: "Labrador", BranchID: 2},
	}
	s.vaccinations = []vaccinationRow{
		{AnimalID: 1, Type: "Rabies", Date: date("2023-11-02")},
		{AnimalID: 1, Type: "Distemper", Date: date("2023-11-02")},
		{AnimalID: 2, Type: "Rabies", Date: date("2024-01-20")},
		{AnimalID: 3, Type: "FVRCP", Date: date("2024-02-14")},
		{AnimalID: 6, Type: "Rabies", Date: date("2022-06-30")},
		{AnimalID: 6, Type: "Parvovirus", Date: date("2022-06-30")},
		{AnimalID: 6, Type: "Leptospirosis", Date: date("2023-07-01")},
	}
	s.adopters = []adopters.Adopter{
		{AdopterID: 1, Name: "Alice Chen", Email: "alice@example.com", PhoneNum: "6045551001"},
		{AdopterID: 2, Name: "Bruno Silva", Email: "bruno@example.com", PhoneNum: "6045551002"},
		{AdopterID: 3, Name: "Carmen Ruiz", Email: "carmen@example.com", PhoneNum: "6045551003"},
		{AdopterID: 4, Name: "Dev Patel", Email: "dev@example.com", PhoneNum: "6045551004"},
	}
	s.applies = []applications.Application{
		{Key: applications.Key{BranchID: 1, AdopterID: 1, AnimalID: 1}, Status: applications.StatusAccepted, Date: date("2024-01-10")},
		{Key: applications.Key{BranchID: 2, AdopterID: 3, AnimalID: 4}, Status: applications.StatusPending, Date: date("2024-02-01")},
		{Key: applications.Key{BranchID: 1, AdopterID: 4, AnimalID: 2}, Status: applications.StatusRejected, Date: date("2024-02-11")},
	}
	s.donors = []donorRow{
		{ID: 1, Name: "Paws Foundation", Email: "give@paws.example"},
		{ID: 2, Name: "Grace Kim", Email: "grace@example.com"},
		{ID: 3, Name: "Harbor Vets", Email: "info@harborvets.example"},
		{ID: 4, Name: "Ivan Novak", Email: "ivan@example.com"},
	}
	s.donations = []donationRow{
		{DonorID: 1, BranchID: 1, Amount: 500, Date: date("2024-01-05")},
		{DonorID: 2, BranchID: 1, Amount: 50, Date: date("2024-01-06")},
		{DonorID: 2, BranchID: 2, Amount: 25, Date: date("2024-03-01")},
		{DonorID: 3, BranchID: 3, Amount: 300, Date: date("2024-02-20")},
		{DonorID: 4, BranchID: 2, Amount: 20, Date: date("2024-04-11")},
	}
	s.events = []events.Event{
		{EventID: 1, Title: "Adoption Fair", Location: "Vancouver", Date: date("2024-05-01"), Type: "Adoption"},
		{EventID: 2, Title: "Charity Gala", Location: "Victoria", Date: date("2024-06-15"), Type: "Fundraiser"},
		{EventID: 3, Title: "Vaccine Clinic", Location: "Vancouver", Date: date("2024-07-20"), Type: "Health"},
	}
	s.attends = []attendRow{
		{DonorID: 1, EventID: 1}, {DonorID: 1, EventID: 2}, {DonorID: 1, EventID: 3},
		{DonorID: 2, EventID: 1}, {DonorID: 2, EventID: 2},
		{DonorID: 3, EventID: 1}, {DonorID: 3, EventID: 2}, {DonorID: 3, EventID: 3},
	}
}

func (s *Store) hasShelter(id int64) bool {
	for _, sh := range s.shelters {
		if sh.BranchID == id {
			return true
		}
	}
	return false
}

func (s *Store) hasAdopter(id int64) bool {
	for _, a := range s.adopters {
		if a.AdopterID == id {
			return true
		}
	}
	return false
}

func (s *Store) hasAnimal(id int64) bool {
	for _, a := range s.animals {
		if a.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) adopted(animalID int64) bool {
	for _, a := range s.applies {
		if a.AnimalID == animalID && a.Status == applications.StatusAccepted {
			return true
		}
	}
	return false
}
