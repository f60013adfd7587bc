package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"car_rental/internal/model"
	"car_rental/internal/repository"
)

// memStore is an in-memory stand-in for the database. Guarded updates
// behave like the SQL ones: they only apply when the row is in the
// expected state.
type memStore struct {
	mu      sync.Mutex
	cars    map[int64]model.Car
	rentals map[int64]model.Rental
	users   map[int64]model.User
	nextID  int64
}

func newMemStore(cars ...model.Car) *memStore {
	s := &memStore{
		cars:    map[int64]model.Car{},
		rentals: map[int64]model.Rental{},
		users:   map[int64]model.User{},
		nextID:  100,
	}
	for _, c := range cars {
		s.cars[c.ID] = c
	}
	return s
}

func (s *memStore) carRepo() repository.CarRepository       { return memCars{s} }
func (s *memStore) rentalRepo() repository.RentalRepository { return memRentals{s} }
func (s *memStore) userRepo() repository.UserRepository     { return memUsers{s} }

func (s *memStore) car(id int64) model.Car {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cars[id]
}

func (s *memStore) rental(id int64) model.Rental {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rentals[id]
}

func (s *memStore) putRental(r model.Rental) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rentals[r.ID] = r
}

type memCars struct{ *memStore }

func (m memCars) FindAll(ctx context.Context) ([]model.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Car{}
	for _, c := range m.cars {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m memCars) FindByID(ctx context.Context, id int64) (*model.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cars[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m memCars) FindTypes(ctx context.Context) ([]model.CarType, error) {
	return []model.CarType{{ID: 1, Name: "Sedan"}}, nil
}

func (m memCars) UpdateStatus(ctx context.Context, id int64, expected, next model.CarStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cars[id]
	if !ok || c.Status != expected {
		return repository.ErrPreconditionFailed
	}
	c.Status = next
	m.cars[id] = c
	return nil
}

type memRentals struct{ *memStore }

func (m memRentals) CreateWithCarHold(ctx context.Context, r *model.Rental) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cars[r.CarID]
	if !ok || c.Status != model.CarAvailable {
		return repository.ErrPreconditionFailed
	}
	c.Status = model.CarRented
	m.cars[c.ID] = c
	m.nextID++
	r.ID = m.nextID
	r.CreatedAt = time.Now()
	m.rentals[r.ID] = *r
	return nil
}

func (m memRentals) FindByID(ctx context.Context, id int64) (*model.Rental, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rentals[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m memRentals) FindAll(ctx context.Context) ([]model.Rental, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Rental{}
	for _, r := range m.rentals {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m memRentals) FindActiveByCar(ctx context.Context, carID int64) ([]model.Rental, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Rental
	for _, r := range m.rentals {
		if r.CarID == carID && r.Status.Active() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m memRentals) release(carID int64) {
	if c, ok := m.cars[carID]; ok && c.Status == model.CarRented {
		c.Status = model.CarAvailable
		m.cars[carID] = c
	}
}

func (m memRentals) Transition(ctx context.Context, id int64, from, to model.RentalStatus, releaseCar bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rentals[id]
	if !ok || r.Status != from {
		return repository.ErrPreconditionFailed
	}
	r.Status = to
	m.rentals[id] = r
	if releaseCar {
		m.release(r.CarID)
	}
	return nil
}

func (m memRentals) UpdateTotalCost(ctx context.Context, id int64, status model.RentalStatus, cost model.Money) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rentals[id]
	if !ok || r.Status != status {
		return repository.ErrPreconditionFailed
	}
	r.TotalCost = cost
	m.rentals[id] = r
	return nil
}

func (m memRentals) StartDue(ctx context.Context, today model.Date) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, r := range m.rentals {
		if r.Status == model.RentalBooked && !r.StartDate.After(today.Time) {
			r.Status = model.RentalOngoing
			m.rentals[id] = r
			n++
		}
	}
	return n, nil
}

func (m memRentals) CompleteDue(ctx context.Context, today model.Date) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, r := range m.rentals {
		if r.Status == model.RentalOngoing && !r.EndDate.After(today.Time) {
			r.Status = model.RentalCompleted
			m.rentals[id] = r
			m.release(r.CarID)
			n++
		}
	}
	return n, nil
}

func (m memRentals) Stats(ctx context.Context) (*model.RentalStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := &model.RentalStats{}
	for _, r := range m.rentals {
		stats.TotalRentals++
		switch r.Status {
		case model.RentalBooked:
			stats.Booked++
		case model.RentalOngoing:
			stats.Ongoing++
		case model.RentalCompleted:
			stats.Completed++
		case model.RentalCancelled:
			stats.Cancelled++
		}
		if r.Status != model.RentalCancelled {
			stats.TotalRevenue += r.TotalCost
		}
	}
	return stats, nil
}

type memUsers struct{ *memStore }

func (m memUsers) Create(ctx context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	u.ID = m.nextID
	m.users[u.ID] = *u
	return nil
}

func (m memUsers) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (m memUsers) FindByID(ctx context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m memUsers) FindAll(ctx context.Context) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.User{}
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}
