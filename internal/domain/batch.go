package domain

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
)

// NoBatchKey is the JSON key of the group holding assets archived without a batch id.
const NoBatchKey = "no-batch"

// BatchGroup is a set of archived credential assets that were live together
// on one device. BatchID is nil for the group of unbatched assets.
//
// A group may hold any number of each asset kind: batches are a best-effort
// correlation, not a transactional unit.
type BatchGroup struct {
	BatchID        *uuid.UUID
	Profiles       []ICloudProfile
	SocialAccounts []SocialAccount
	Proxies        []Proxy
	LastArchivedAt *time.Time
}

// Key returns the batch id as a string, or NoBatchKey for the unbatched group.
func (g BatchGroup) Key() string {
	if g.BatchID == nil {
		return NoBatchKey
	}
	return g.BatchID.String()
}

// Size returns the number of assets in the group.
func (g BatchGroup) Size() int {
	return len(g.Profiles) + len(g.SocialAccounts) + len(g.Proxies)
}

func (g BatchGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key            string          `json:"key"`
		BatchID        *uuid.UUID      `json:"batch_id"`
		Profiles       []ICloudProfile `json:"profiles"`
		SocialAccounts []SocialAccount `json:"social_accounts"`
		Proxies        []Proxy         `json:"proxies"`
		LastArchivedAt *time.Time      `json:"last_archived_at"`
	}{
		Key:            g.Key(),
		BatchID:        g.BatchID,
		Profiles:       nonNil(g.Profiles),
		SocialAccounts: nonNil(g.SocialAccounts),
		Proxies:        nonNil(g.Proxies),
		LastArchivedAt: g.LastArchivedAt,
	})
}

// GroupByBatch buckets archived assets by batch id. All assets with a nil
// batch id land in a single group. Every input asset appears in exactly one
// group. Groups are ordered by most recent archival first; the unbatched
// group always comes last.
func GroupByBatch(profiles []ICloudProfile, accounts []SocialAccount, proxies []Proxy) []BatchGroup {
	groups := make(map[uuid.UUID]*BatchGroup)
	var noBatch *BatchGroup

	groupFor := func(id *uuid.UUID) *BatchGroup {
		if id == nil {
			if noBatch == nil {
				noBatch = &BatchGroup{}
			}
			return noBatch
		}
		g, ok := groups[*id]
		if !ok {
			bid := *id
			g = &BatchGroup{BatchID: &bid}
			groups[bid] = g
		}
		return g
	}

	for _, p := range profiles {
		g := groupFor(p.BatchID)
		g.Profiles = append(g.Profiles, p)
		g.touch(p.ArchivedAt)
	}
	for _, a := range accounts {
		g := groupFor(a.BatchID)
		g.SocialAccounts = append(g.SocialAccounts, a)
		g.touch(a.ArchivedAt)
	}
	for _, p := range proxies {
		g := groupFor(p.BatchID)
		g.Proxies = append(g.Proxies, p)
		g.touch(p.ArchivedAt)
	}

	result := make([]BatchGroup, 0, len(groups)+1)
	for _, g := range groups {
		result = append(result, *g)
	}
	sort.Slice(result, func(i, j int) bool {
		ti, tj := result[i].LastArchivedAt, result[j].LastArchivedAt
		switch {
		case ti == nil && tj == nil:
			return result[i].Key() < result[j].Key()
		case ti == nil:
			return false
		case tj == nil:
			return true
		case ti.Equal(*tj):
			return result[i].Key() < result[j].Key()
		}
		return ti.After(*tj)
	})

	if noBatch != nil {
		result = append(result, *noBatch)
	}
	return result
}

func (g *BatchGroup) touch(at *time.Time) {
	if at == nil {
		return
	}
	if g.LastArchivedAt == nil || at.After(*g.LastArchivedAt) {
		t := *at
		g.LastArchivedAt = &t
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
