package store

import "backend-checkin/internal/models"

func (s *Store) GetUser(id int) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.get(id)
}

func (s *Store) GetUserByUsername(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.find(func(u models.User) bool {
		return u.Username == username
	})
}

// CreateUser stores the user as given. Callers hash the password
// before insert; users are only created at seed time.
func (s *Store) CreateUser(in models.InsertUser) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	role := in.Role
	if role == "" {
		role = "poll_worker"
	}
	return s.users.insert(func(id int) models.User {
		return models.User{
			ID:       id,
			Username: in.Username,
			Password: in.Password,
			FullName: in.FullName,
			Station:  in.Station,
			Role:     role,
		}
	})
}
