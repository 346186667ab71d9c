// Package catalog holds the fixed scheduling calendar: the date window, the
// half-hour windows of each slot category, the SPOC list and the GD topics.
//
// The defaults mirror the event the scheduler was built for. A YAML file can
// replace any of the lists (see Load); the engine sizes are constants and
// cannot be overridden.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dalemusser/mentorhub/internal/domain/models"
	"gopkg.in/yaml.v3"
)

// Engine sizes.
const (
	GroupSize        = 6   // students per GD group
	PITarget         = 2   // distinct PI mentors sought per student
	AttemptBudget    = 200 // PI draw attempts per student
	SlotsPerCategory = 8   // half-hour windows per slot category
	PIMinutes        = 30  // minutes credited per PI row
	GDMinutes        = 5   // minutes credited per GD row
	SPOCBucket       = 12  // students per default SPOC
)

var (
	ErrNoDates        = errors.New("catalog: at least one date is required")
	ErrBadDate        = errors.New("catalog: dates must be YYYY-MM-DD")
	ErrWindowCount    = errors.New("catalog: each slot category needs exactly 8 windows")
	ErrUnknownSlot    = errors.New("catalog: unknown slot category")
	ErrNoTopics       = errors.New("catalog: at least one GD topic is required")
	ErrEmptyCatalogFS = errors.New("catalog: file is empty")
)

// Catalog is the calendar and label set every engine reads from.
type Catalog struct {
	Dates  []string            `yaml:"dates"`
	Slots  map[string][]string `yaml:"slots"`
	SPOCs  []string            `yaml:"spocs"`
	Topics []string            `yaml:"topics"`
}

// Categories returns the slot categories in their canonical order.
func Categories() []string {
	return []string{models.SlotAfternoon, models.SlotEvening}
}

// IsCategory reports whether s names a slot category.
func IsCategory(s string) bool {
	return s == models.SlotAfternoon || s == models.SlotEvening
}

// Default returns the built-in catalog. Each call returns fresh slices.
func Default() Catalog {
	return Catalog{
		Dates: []string{"2025-10-16", "2025-10-17", "2025-10-18", "2025-10-19"},
		Slots: map[string][]string{
			models.SlotAfternoon: {
				"12:00-12:30", "12:30-13:00", "13:00-13:30", "13:30-14:00",
				"14:00-14:30", "14:30-15:00", "15:00-15:30", "15:30-16:00",
			},
			models.SlotEvening: {
				"17:00-17:30", "17:30-18:00", "18:00-18:30", "18:30-19:00",
				"19:00-19:30", "19:30-20:00", "20:00-20:30", "20:30-21:00",
			},
		},
		SPOCs: []string{
			"ADITYA SINGH", "ARNAV JOSHI", "BASIL RATHI", "DEV PAHARIA", "DIVYAANSH MEHTA",
			"JATIN", "JAY PRATAP SINGH", "KHUSHI SHARDA", "LAKSHYA CHAUBEY", "MOHAMED AMEEN",
			"RAHUL MALIK", "RANISHKA", "SHIBANEE RP", "SIDHANT DADWAL", "VAIBHAV VERMA",
		},
		Topics: []string{
			"AI and Job Displacement", "Remote Work Culture", "Sustainable Business Practices",
			"Startup vs Corporate Career", "Digital Privacy Rights", "Global Trade Policies",
			"Climate Change Business Impact", "Future of Education", "Healthcare Innovation",
			"Financial Technology Revolution", "Gig Economy Future", "ESG Investing",
			"Blockchain in Business", "Mental Health at Work", "Indian Manufacturing Growth",
		},
	}
}

// Window returns the concrete time window at idx for a slot category.
func (c Catalog) Window(category string, idx int) (string, bool) {
	w, ok := c.Slots[category]
	if !ok || idx < 0 || idx >= len(w) {
		return "", false
	}
	return w[idx], true
}

// SPOCFor returns the default coordinator for the student at roster index
// idx. Students past the end of the SPOC list get no coordinator.
func (c Catalog) SPOCFor(idx int) string {
	b := idx / SPOCBucket
	if idx < 0 || b >= len(c.SPOCs) {
		return ""
	}
	return c.SPOCs[b]
}

// DefaultAvailability is the availability given to mentors whose upload
// row leaves it blank: the first two dates of the window.
func (c Catalog) DefaultAvailability() []string {
	n := 2
	if len(c.Dates) < n {
		n = len(c.Dates)
	}
	return append([]string(nil), c.Dates[:n]...)
}

// HasSPOC reports whether name is in the SPOC list.
func (c Catalog) HasSPOC(name string) bool {
	for _, s := range c.SPOCs {
		if s == name {
			return true
		}
	}
	return false
}

// Validate checks the invariants the engines rely on.
func (c Catalog) Validate() error {
	if len(c.Dates) == 0 {
		return ErrNoDates
	}
	for _, d := range c.Dates {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return fmt.Errorf("%w: %q", ErrBadDate, d)
		}
	}
	for cat, w := range c.Slots {
		if !IsCategory(cat) {
			return fmt.Errorf("%w: %q", ErrUnknownSlot, cat)
		}
		if len(w) != SlotsPerCategory {
			return fmt.Errorf("%w: %s has %d", ErrWindowCount, cat, len(w))
		}
	}
	for _, cat := range Categories() {
		if _, ok := c.Slots[cat]; !ok {
			return fmt.Errorf("%w: %s missing", ErrWindowCount, cat)
		}
	}
	if len(c.Topics) == 0 {
		return ErrNoTopics
	}
	return nil
}

// Load reads a YAML catalog file and overlays it on the defaults. Sections
// the file leaves out keep their default values. An empty path returns the
// defaults unchanged.
func Load(path string) (Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse overlays YAML catalog data on the defaults.
func Parse(data []byte) (Catalog, error) {
	c := Default()
	var file Catalog
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(file.Dates) == 0 && len(file.Slots) == 0 && len(file.SPOCs) == 0 && len(file.Topics) == 0 {
		return Catalog{}, ErrEmptyCatalogFS
	}
	if len(file.Dates) > 0 {
		c.Dates = file.Dates
	}
	for cat, w := range file.Slots {
		c.Slots[cat] = w
	}
	if len(file.SPOCs) > 0 {
		c.SPOCs = file.SPOCs
	}
	if len(file.Topics) > 0 {
		c.Topics = file.Topics
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}
