// FILE: internal/service/fakes_test.go
// In-memory repository fakes shared by the service tests.
package service

import (
	"context"
	"sort"
	"sync"

	"schoolhub-be/internal/entity"
	"schoolhub-be/internal/repository/contract"
	"schoolhub-be/internal/repository/specification"
	"schoolhub-be/internal/repository/unitofwork"
	"schoolhub-be/pkg/navigation"

	"github.com/google/uuid"
)

type fakeRepoFactory struct {
	uow *fakeUnitOfWork
}

func newFakeRepoFactory() *fakeRepoFactory {
	return &fakeRepoFactory{
		uow: &fakeUnitOfWork{
			features:      &fakeFeatureRepo{items: map[uuid.UUID]navigation.Feature{}},
			entitlements:  &fakeSchoolFeatureRepo{},
			overrides:     &fakeMenuOverrideRepo{},
			schools:       &fakeSchoolRepo{items: map[uuid.UUID]entity.School{}},
			users:         &fakeUserRepo{items: map[uuid.UUID]entity.User{}},
			refreshTokens: &fakeRefreshTokenRepo{},
		},
	}
}

func (f *fakeRepoFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeUnitOfWork struct {
	features      *fakeFeatureRepo
	entitlements  *fakeSchoolFeatureRepo
	overrides     *fakeMenuOverrideRepo
	schools       *fakeSchoolRepo
	users         *fakeUserRepo
	refreshTokens *fakeRefreshTokenRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository { return u.users }
func (u *fakeUnitOfWork) RefreshTokenRepository() contract.RefreshTokenRepository {
	return u.refreshTokens
}
func (u *fakeUnitOfWork) SchoolRepository() contract.SchoolRepository   { return u.schools }
func (u *fakeUnitOfWork) FeatureRepository() contract.FeatureRepository { return u.features }
func (u *fakeUnitOfWork) SchoolFeatureRepository() contract.SchoolFeatureRepository {
	return u.entitlements
}
func (u *fakeUnitOfWork) MenuOverrideRepository() contract.MenuOverrideRepository {
	return u.overrides
}

func specID(specs []specification.Specification) (uuid.UUID, bool) {
	for _, s := range specs {
		if byID, ok := s.(specification.ByID); ok {
			return byID.ID, true
		}
	}
	return uuid.Nil, false
}

type fakeFeatureRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]navigation.Feature
}

func (r *fakeFeatureRepo) Create(ctx context.Context, feature *navigation.Feature) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[feature.Id] = *feature
	return nil
}

func (r *fakeFeatureRepo) Update(ctx context.Context, feature *navigation.Feature) error {
	return r.Create(ctx, feature)
}

func (r *fakeFeatureRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeFeatureRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*navigation.Feature, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := specID(specs); ok {
		if f, found := r.items[id]; found {
			return &f, nil
		}
	}
	return nil, nil
}

func (r *fakeFeatureRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]navigation.Feature, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]navigation.Feature, 0, len(r.items))
	for _, f := range r.items {
		out = append(out, f)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Key < out[b].Key })
	return out, nil
}

func (r *fakeFeatureRepo) FindByKey(ctx context.Context, key string) (*navigation.Feature, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.items {
		if f.Key == key {
			f := f
			return &f, nil
		}
	}
	return nil, nil
}

type fakeSchoolFeatureRepo struct {
	mu    sync.Mutex
	items []navigation.Entitlement
}

func (r *fakeSchoolFeatureRepo) Create(ctx context.Context, ent *navigation.Entitlement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *ent)
	return nil
}

func (r *fakeSchoolFeatureRepo) SetEnabled(ctx context.Context, schoolId, featureId uuid.UUID, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].SchoolId == schoolId && r.items[i].FeatureId == featureId {
			r.items[i].Enabled = enabled
			return nil
		}
	}
	return nil
}

func (r *fakeSchoolFeatureRepo) FindPair(ctx context.Context, schoolId, featureId uuid.UUID) (*navigation.Entitlement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ent := range r.items {
		if ent.SchoolId == schoolId && ent.FeatureId == featureId {
			ent := ent
			return &ent, nil
		}
	}
	return nil, nil
}

func (r *fakeSchoolFeatureRepo) FindAllBySchool(ctx context.Context, schoolId uuid.UUID, specs ...specification.Specification) ([]navigation.Entitlement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]navigation.Entitlement, 0)
	for _, ent := range r.items {
		if ent.SchoolId == schoolId {
			out = append(out, ent)
		}
	}
	return out, nil
}

type fakeMenuOverrideRepo struct {
	mu    sync.Mutex
	items []navigation.MenuOverride
}

func (r *fakeMenuOverrideRepo) Save(ctx context.Context, override *navigation.MenuOverride) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].SchoolId == override.SchoolId && r.items[i].FeatureId == override.FeatureId {
			r.items[i] = *override
			return nil
		}
	}
	r.items = append(r.items, *override)
	return nil
}

func (r *fakeMenuOverrideRepo) Delete(ctx context.Context, schoolId, featureId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].SchoolId == schoolId && r.items[i].FeatureId == featureId {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeMenuOverrideRepo) FindPair(ctx context.Context, schoolId, featureId uuid.UUID) (*navigation.MenuOverride, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.items {
		if o.SchoolId == schoolId && o.FeatureId == featureId {
			o := o
			return &o, nil
		}
	}
	return nil, nil
}

type fakeSchoolRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]entity.School
}

func (r *fakeSchoolRepo) Create(ctx context.Context, school *entity.School) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[school.Id] = *school
	return nil
}

func (r *fakeSchoolRepo) Update(ctx context.Context, school *entity.School) error {
	return r.Create(ctx, school)
}

func (r *fakeSchoolRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.School, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := specID(specs); ok {
		if s, found := r.items[id]; found {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeSchoolRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.School, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.School, 0, len(r.items))
	for id := range r.items {
		s := r.items[id]
		out = append(out, &s)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}

func (r *fakeSchoolRepo) FindBySubdomain(ctx context.Context, subdomain string) (*entity.School, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.items {
		if s.Subdomain == subdomain {
			s := s
			return &s, nil
		}
	}
	return nil, nil
}

type fakeUserRepo struct {
	mu        sync.Mutex
	items     map[uuid.UUID]entity.User
	providers []entity.UserProvider
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[user.Id] = *user
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	return r.Create(ctx, user)
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := specID(specs); ok {
		if u, found := r.items[id]; found {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.items))
	for id := range r.items {
		u := r.items[id]
		out = append(out, &u)
	}
	return out, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) SaveProvider(ctx context.Context, provider *entity.UserProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = append(r.providers, *provider)
	return nil
}

type fakeRefreshTokenRepo struct {
	mu    sync.Mutex
	items []entity.UserRefreshToken
}

func (r *fakeRefreshTokenRepo) Create(ctx context.Context, token *entity.UserRefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *token)
	return nil
}

func (r *fakeRefreshTokenRepo) FindByHash(ctx context.Context, tokenHash string) (*entity.UserRefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.items {
		if t.TokenHash == tokenHash {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (r *fakeRefreshTokenRepo) Revoke(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].Id == id {
			r.items[i].Revoked = true
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) RevokeAllForUser(ctx context.Context, userId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].UserId == userId {
			r.items[i].Revoked = true
		}
	}
	return nil
}

// fakePublisher records published payloads for assertion.
type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *fakePublisher) published() [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][]byte, len(p.payloads))
	copy(out, p.payloads)
	return out
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
