package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crediya-usuarios/internal/application/auth"
	"github.com/jhoicas/crediya-usuarios/internal/application/user"
	"github.com/jhoicas/crediya-usuarios/internal/domain"
	"github.com/jhoicas/crediya-usuarios/internal/domain/entity"
	"github.com/jhoicas/crediya-usuarios/internal/domain/valueobject"
	"github.com/jhoicas/crediya-usuarios/internal/infrastructure/security"
	apphttp "github.com/jhoicas/crediya-usuarios/internal/interfaces/http"
	"github.com/jhoicas/crediya-usuarios/pkg/logger"
	"github.com/jhoicas/crediya-usuarios/pkg/validation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	mu    sync.Mutex
	byID  map[string]*entity.User
	order []string
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*entity.User{}}
}

func (r *memUserRepo) Save(_ context.Context, u *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	cp.ID = uuid.New().String()
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	r.byID[cp.ID] = &cp
	r.order = append(r.order, cp.ID)
	out := cp
	return &out, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[u.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	cp.UpdatedAt = time.Now().UTC()
	r.byID[u.ID] = &cp
	out := cp
	return &out, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email valueobject.Email) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.byID))
	for _, id := range r.order {
		if u, ok := r.byID[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memUserRepo) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

func (r *memUserRepo) DeleteByEmail(_ context.Context, email valueobject.Email) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.byID {
		if u.Email == email {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *memUserRepo) ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error) {
	u, err := r.FindByEmail(ctx, email)
	return u != nil, err
}

func (r *memUserRepo) ExistsByEmailExcludingID(_ context.Context, email valueobject.Email, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email && u.ID != id {
			return true, nil
		}
	}
	return false, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Aplicación de prueba
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests-32bytes!"
	testIssuer    = "crediya-test"
	testAudience  = "crediya-clients"
	testExpMin    = 60

	adminRoleID  = "b34c1721-c4c2-42da-907c-aed4cd00788c"
	userRoleID   = "4595846d-823f-466a-9ac9-b9707c27dd18"
	asesorRoleID = "51688f39-44c2-4216-a0aa-bd0351b79dd0"
)

type testEnv struct {
	app    *fiber.App
	repo   *memUserRepo
	tokens *auth.TokenService
	roles  *entity.RoleCatalog
	hasher *security.BcryptHasher
}

func testRoles(t *testing.T) *entity.RoleCatalog {
	t.Helper()
	c, err := entity.NewRoleCatalog(map[entity.RoleName]string{
		entity.RoleAdmin:  adminRoleID,
		entity.RoleUser:   userRoleID,
		entity.RoleAsesor: asesorRoleID,
	})
	require.NoError(t, err)
	return c
}

func testTokens(t *testing.T, roles *entity.RoleCatalog) *auth.TokenService {
	t.Helper()
	svc, err := auth.NewTokenService(auth.TokenConfig{
		Secret: testJWTSecret, Issuer: testIssuer, Audience: testAudience, ExpMinutes: testExpMin,
	}, roles)
	require.NoError(t, err)
	return svc
}

// newTestEnv arma la API completa sobre el repositorio en memoria.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	roles := testRoles(t)
	repo := newMemUserRepo()
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	tokens := testTokens(t, roles)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(repo, hasher, tokens),
		Tokens:       tokens,
		CreateUserUC: user.NewCreateUserUseCase(repo, hasher, roles),
		UpdateUserUC: user.NewUpdateUserUseCase(repo),
		DeleteUserUC: user.NewDeleteUserUseCase(repo),
		GetUserUC:    user.NewGetUserUseCase(repo, false),
		Roles:        roles,
		Validator:    validation.New(),
		Log:          logger.Nop(),
	})
	return &testEnv{app: app, repo: repo, tokens: tokens, roles: roles, hasher: hasher}
}

// seedUser guarda un usuario con la contraseña indicada y devuelve la copia persistida.
func (e *testEnv) seedUser(t *testing.T, email, password, roleID string) *entity.User {
	t.Helper()
	mail, err := valueobject.NewEmail(email)
	require.NoError(t, err)
	birthday, err := valueobject.ParseBirthday("1990-04-12")
	require.NoError(t, err)
	salary, err := valueobject.SalaryFromDecimal(mustDecimal("2500000"))
	require.NoError(t, err)
	hash, err := e.hasher.Hash(context.Background(), password)
	require.NoError(t, err)
	saved, err := e.repo.Save(context.Background(), entity.NewUser("Ana", "Gómez", birthday,
		"Calle 10 # 20-30, Medellín", mail, salary, "1020304050", hash, roleID))
	require.NoError(t, err)
	return saved
}

// bearerFor emite un token para u.
func (e *testEnv) bearerFor(t *testing.T, u *entity.User) string {
	t.Helper()
	issued, err := e.tokens.Issue(u)
	require.NoError(t, err)
	return "Bearer " + issued.Token
}

func doJSON(t *testing.T, app *fiber.App, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
