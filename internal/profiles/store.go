package profiles

// Store is an ordered set of profiles keyed by name. The zero value is an
// empty store ready to use.
type Store struct {
	// Current is the profile last applied globally, or empty.
	Current string

	order    []string
	profiles map[string]Profile
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{profiles: make(map[string]Profile)}
}

// Get returns the profile with exactly this name.
func (s *Store) Get(name string) (Profile, bool) {
	if s == nil {
		return Profile{}, false
	}
	p, ok := s.profiles[name]
	return p, ok
}

// Upsert inserts p, or replaces the profile with the same name in place.
func (s *Store) Upsert(p Profile) {
	if s.profiles == nil {
		s.profiles = make(map[string]Profile)
	}
	if _, exists := s.profiles[p.Name]; !exists {
		s.order = append(s.order, p.Name)
	}
	s.profiles[p.Name] = p
}

// Remove deletes the named profile and reports whether it existed.
// Removing the current profile clears Current.
func (s *Store) Remove(name string) bool {
	if _, exists := s.profiles[name]; !exists {
		return false
	}
	delete(s.profiles, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.Current == name {
		s.Current = ""
	}
	return true
}

// List returns the profiles in insertion order.
func (s *Store) List() []Profile {
	list := make([]Profile, 0, len(s.order))
	for _, name := range s.order {
		list = append(list, s.profiles[name])
	}
	return list
}

// Names returns profile names in insertion order.
func (s *Store) Names() []string {
	return append([]string(nil), s.order...)
}

func (s *Store) Len() int {
	return len(s.order)
}
