package records

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	recordsObject   = "records"
	recordsProperty = "encounter"
)

// Records is the persistent tally of finished fights. BestKillTime is in
// seconds of simulated time, 0 until the first win.
type Records struct {
	Fights       int     `yaml:"fights"`
	Wins         int     `yaml:"wins"`
	Losses       int     `yaml:"losses"`
	BestKillTime float64 `yaml:"best_kill_time"`
}

func (r Records) String() string {
	best := "-"
	if r.Wins > 0 {
		best = fmt.Sprintf("%.1fs", r.BestKillTime)
	}
	return fmt.Sprintf("fights %d  wins %d  losses %d  best %s", r.Fights, r.Wins, r.Losses, best)
}

// Store keeps Records in memory and mirrors them to gdata storage. A nil
// manager keeps everything in memory only.
type Store struct {
	manager *gdata.Manager
	records Records
}

// Open opens gdata storage for appName. Storage that cannot be opened is
// logged and the store runs in memory.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("records: storage unavailable: %v (records are not saved)", err)
		m = nil
	}
	s, err := NewStore(m)
	if err != nil {
		log.Printf("records: %v (starting from zero)", err)
	}
	return s
}

// NewStore loads saved records from m. The store is usable even when an
// error is returned.
func NewStore(m *gdata.Manager) (*Store, error) {
	s := &Store{manager: m}
	if m == nil || !m.ObjectPropExists(recordsObject, recordsProperty) {
		return s, nil
	}
	data, err := m.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return s, fmt.Errorf("load records: %w", err)
	}
	var r Records
	if err := yaml.Unmarshal(data, &r); err != nil {
		return s, fmt.Errorf("decode records: %w", err)
	}
	s.records = r
	return s, nil
}

func (s *Store) Records() Records {
	return s.records
}

// RecordWin counts a boss kill after killTime seconds.
func (s *Store) RecordWin(killTime float64) error {
	s.records.Fights++
	s.records.Wins++
	if s.records.Wins == 1 || killTime < s.records.BestKillTime {
		s.records.BestKillTime = killTime
	}
	return s.save()
}

// RecordLoss counts a player death.
func (s *Store) RecordLoss() error {
	s.records.Fights++
	s.records.Losses++
	return s.save()
}

// Fight records the outcome of one encounter. Only the first outcome
// counts; later ones are ignored.
type Fight struct {
	store *Store
	done  bool
}

func (s *Store) StartFight() *Fight {
	return &Fight{store: s}
}

func (f *Fight) Done() bool {
	return f.done
}

// Win records a boss kill unless this fight already has an outcome.
func (f *Fight) Win(killTime float64) error {
	if f.done {
		return nil
	}
	f.done = true
	return f.store.RecordWin(killTime)
}

// Loss records a player death unless this fight already has an outcome.
func (f *Fight) Loss() error {
	if f.done {
		return nil
	}
	f.done = true
	return f.store.RecordLoss()
}

func (s *Store) save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := s.manager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	return nil
}
