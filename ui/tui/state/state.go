package state

import (
	"time"

	"scrollseg/internal/collector"
	"scrollseg/internal/health"
)

// Page is also the tab index of the page in the segment bar.
type Page int

const (
	PageOverview Page = iota
	PageCPU
	PageMemory
	PageDisk
	PageNetwork
	PageConsole
)

// Pages lists every page in tab order.
func Pages() []Page {
	return []Page{PageOverview, PageCPU, PageMemory, PageDisk, PageNetwork, PageConsole}
}

// Titles returns the tab titles in tab order.
func Titles() []string {
	pages := Pages()
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = p.Title()
	}
	return out
}

func (p Page) Title() string {
	switch p {
	case PageOverview:
		return "Overview"
	case PageCPU:
		return "CPU"
	case PageMemory:
		return "Memory"
	case PageDisk:
		return "Disk"
	case PageNetwork:
		return "Network"
	case PageConsole:
		return "Console"
	}
	return "?"
}

// Group is the health group whose worst status colours the page's tab.
// Overview uses the overall status; Console has none.
func (p Page) Group() (string, bool) {
	switch p {
	case PageOverview:
		return "", true
	case PageCPU:
		return health.GroupCPU, true
	case PageMemory:
		return health.GroupMemory, true
	case PageDisk:
		return health.GroupDisk, true
	case PageNetwork:
		return health.GroupNetwork, true
	}
	return "", false
}

// AppState holds the current snapshot of the system
type AppState struct {
	Stats       *collector.RawStats
	Results     []health.CheckResult
	Summary     map[string]string
	LastUpdate  time.Time
	Err         error
	ConsoleLogs []string
	CurrentPage Page
	AutoPage    bool
}

// Log appends a console line, keeping at most limit lines.
func (s *AppState) Log(line string, limit int) {
	s.ConsoleLogs = append(s.ConsoleLogs, line)
	if over := len(s.ConsoleLogs) - limit; limit > 0 && over > 0 {
		s.ConsoleLogs = s.ConsoleLogs[over:]
	}
}

// ResultsFor returns the results of one health group.
func (s AppState) ResultsFor(group string) []health.CheckResult {
	var out []health.CheckResult
	for _, r := range s.Results {
		if r.Group == group {
			out = append(out, r)
		}
	}
	return out
}
