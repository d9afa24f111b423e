package overview

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memoizer runs the fetch+assemble pipeline at most once per render pass.
// A pass is one inbound request; the router middleware allocates its id
// and must call EndPass when the request finishes. This is not a cache:
// there is no TTL and nothing survives the pass.
type Memoizer struct {
	group  singleflight.Group
	mu     sync.Mutex
	passes map[string]map[string]*Payload
}

func NewMemoizer() *Memoizer {
	return &Memoizer{passes: make(map[string]map[string]*Payload)}
}

func memoKey(passID, companyID, userID string) string {
	return passID + "|" + companyID + "|" + userID
}

// Get returns the pass-scoped payload, computing it through single-flight
// so concurrent callers inside one pass share a single fan-out fetch.
func (m *Memoizer) Get(passID, companyID, userID string, compute func() *Payload) *Payload {
	key := memoKey(passID, companyID, userID)

	m.mu.Lock()
	if results, ok := m.passes[passID]; ok {
		if payload, ok := results[key]; ok {
			m.mu.Unlock()
			return payload
		}
	}
	m.mu.Unlock()

	v, _, _ := m.group.Do(key, func() (interface{}, error) {
		payload := compute()
		m.mu.Lock()
		results, ok := m.passes[passID]
		if !ok {
			results = make(map[string]*Payload)
			m.passes[passID] = results
		}
		results[key] = payload
		m.mu.Unlock()
		return payload, nil
	})
	return v.(*Payload)
}

// EndPass releases everything memoized under the pass id. Skipping it
// would leak one payload per request for the life of the process.
func (m *Memoizer) EndPass(passID string) {
	m.mu.Lock()
	delete(m.passes, passID)
	m.mu.Unlock()
}
