package services

import (
	"github.com/leadflow-simple/dto"
	"github.com/leadflow-simple/models"
	"gorm.io/gorm"
)

// In-memory stores mirroring the repository contracts, including the
// gorm.ErrRecordNotFound convention for missing records.

type fakeUserStore struct {
	users []models.User
}

func (f *fakeUserStore) FindByID(id string) (models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) FindByEmail(email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) FindAll(limit int) ([]models.User, error) {
	if len(f.users) > limit {
		return f.users[:limit], nil
	}
	return f.users, nil
}

func (f *fakeUserStore) EmailTaken(email, excludeID string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Create(user models.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) Save(user models.User) error {
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeLeadStore struct {
	leads []models.Lead
}

func (f *fakeLeadStore) Create(lead models.Lead) error {
	f.leads = append(f.leads, lead)
	return nil
}

func (f *fakeLeadStore) FindByID(id string) (models.Lead, error) {
	for _, l := range f.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Lead{}, gorm.ErrRecordNotFound
}

func (f *fakeLeadStore) FindByOwner(ownerID string, limit int) ([]models.Lead, error) {
	var out []models.Lead
	for _, l := range f.leads {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeLeadStore) CountByOwner(ownerID string) (int64, error) {
	var count int64
	for _, l := range f.leads {
		if l.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (f *fakeLeadStore) FindFiltered(filter dto.LeadFilter, limit int) ([]models.Lead, error) {
	var out []models.Lead
	for _, l := range f.leads {
		if filter.Course != "" && l.Course != filter.Course {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.OwnerID != "" && l.OwnerID != filter.OwnerID {
			continue
		}
		out = append(out, l)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeLeadStore) Count() (int64, error) {
	return int64(len(f.leads)), nil
}

func (f *fakeLeadStore) Save(lead models.Lead) error {
	for i, l := range f.leads {
		if l.ID == lead.ID {
			f.leads[i] = lead
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeStatusCatalog struct {
	names []string
}

func (f *fakeStatusCatalog) NameExists(name string) (bool, error) {
	for _, n := range f.names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

type fakeCourseStore struct {
	courses []models.Course
}

func (f *fakeCourseStore) FindActive(limit int) ([]models.Course, error) {
	var out []models.Course
	for _, c := range f.courses {
		if c.Active {
			out = append(out, c)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeCourseStore) FindAll(limit int) ([]models.Course, error) {
	if len(f.courses) > limit {
		return f.courses[:limit], nil
	}
	return f.courses, nil
}

func (f *fakeCourseStore) Create(course models.Course) error {
	f.courses = append(f.courses, course)
	return nil
}

type fakeLeadStatusStore struct {
	statuses []models.LeadStatus
}

func (f *fakeLeadStatusStore) FindAll(limit int) ([]models.LeadStatus, error) {
	if len(f.statuses) > limit {
		return f.statuses[:limit], nil
	}
	return f.statuses, nil
}

func (f *fakeLeadStatusStore) Create(status models.LeadStatus) error {
	f.statuses = append(f.statuses, status)
	return nil
}

// fakeAudit records every call so tests can assert the exact entries
// a mutation produced
type fakeAudit struct {
	entries []models.AuditLog
}

func (f *fakeAudit) Record(actorID, actorName string, action models.AuditAction, entityKind, entityID, detail string) {
	f.entries = append(f.entries, models.AuditLog{
		ActorID:    actorID,
		ActorName:  actorName,
		Action:     action,
		EntityKind: entityKind,
		EntityID:   entityID,
		Detail:     detail,
	})
}
