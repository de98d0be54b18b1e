package profile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// storedProfile is the TOML-serializable form of a Profile. Encoding
// is not persisted: profiles loaded from a store carry the zero
// Encoding (transport.EncodingJSON).
type storedProfile struct {
	Scheme   string `toml:"scheme"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"`
}

type storeFile struct {
	Profiles map[string]storedProfile `toml:"profiles"`
}

// Store is a named collection of profiles persisted as one TOML file.
type Store struct {
	Profiles map[string]Profile
}

// LoadStore reads a profile store from path. A missing file is not an
// error: it loads as an empty store, matching this codebase's
// convention of defaulting rather than failing on first run.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Store{Profiles: map[string]Profile{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("profile: load store %s: %w", path, err)
	}

	var raw storeFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("profile: parse store %s: %w", path, err)
	}

	s := &Store{Profiles: make(map[string]Profile, len(raw.Profiles))}
	for name, sp := range raw.Profiles {
		p := Profile{Scheme: sp.Scheme, Host: sp.Host, Port: sp.Port, Password: sp.Password}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("profile: store %s entry %q: %w", path, name, err)
		}
		s.Profiles[name] = p
	}
	return s, nil
}

// Save writes the store to path as TOML.
func (s *Store) Save(path string) error {
	raw := storeFile{Profiles: make(map[string]storedProfile, len(s.Profiles))}
	for name, p := range s.Profiles {
		raw.Profiles[name] = storedProfile{Scheme: p.Scheme, Host: p.Host, Port: p.Port, Password: p.Password}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("profile: create store %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(raw); err != nil {
		return fmt.Errorf("profile: encode store %s: %w", path, err)
	}
	return nil
}

// Get returns a named profile.
func (s *Store) Get(name string) (Profile, bool) {
	p, ok := s.Profiles[name]
	return p, ok
}

// Put adds or replaces a named profile.
func (s *Store) Put(name string, p Profile) {
	if s.Profiles == nil {
		s.Profiles = make(map[string]Profile)
	}
	s.Profiles[name] = p
}
