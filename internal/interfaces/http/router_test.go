package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-console/internal/application/auth"
	"github.com/jhoicas/Inventario-console/internal/application/dto"
	"github.com/jhoicas/Inventario-console/internal/application/session"
	"github.com/jhoicas/Inventario-console/internal/domain/entity"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/api"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Inventario-console/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// API de inventario falsa
// ──────────────────────────────────────────────────────────────────────────────

const testPassword = "clave-de-prueba"

// fakeAPI responde /api/auth/login y los recursos del catálogo.
// forced fuerza un estado para toda petición que no sea login.
type fakeAPI struct {
	t *testing.T

	mu        sync.Mutex
	forced    int
	calls     []string
	authHdrs  []string
	lastBody  []byte
	loginDown bool
}

func (f *fakeAPI) force(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forced = status
}

func (f *fakeAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeAPI) called(call string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (f *fakeAPI) lastAuth() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.authHdrs) == 0 {
		return ""
	}
	return f.authHdrs[len(f.authHdrs)-1]
}

var fakeUsers = map[string]entity.Identity{
	adminIdentity.Username:    adminIdentity,
	employeeIdentity.Username: employeeIdentity,
	customerIdentity.Username: customerIdentity,
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
	f.authHdrs = append(f.authHdrs, r.Header.Get("Authorization"))
	f.lastBody = body
	forced, loginDown := f.forced, f.loginDown
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if r.URL.Path == "/api/auth/login" {
		if loginDown {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var in dto.LoginRequest
		_ = json.Unmarshal(body, &in)
		id, ok := fakeUsers[in.Username]
		if !ok || in.Password != testPassword {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
			return
		}
		_ = json.NewEncoder(w).Encode(dto.LoginResponse{Token: tokenFor(f.t, id, time.Hour), Username: id.Username, Roles: "ROLE_" + id.Role.String()})
		return
	}
	if forced != 0 {
		w.WriteHeader(forced)
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/products":
		_ = json.NewEncoder(w).Encode([]entity.Product{
			{ID: 1, Code: "P-1", Name: "Tornillo", Quantity: 120, CostPrice: decimal.NewFromInt(10), RetailPrice: decimal.NewFromInt(15)},
			{ID: 2, Code: "P-2", Name: "Tuerca", Quantity: 3, CostPrice: decimal.RequireFromString("2.5"), RetailPrice: decimal.NewFromInt(4)},
		})
	case r.Method == http.MethodGet && r.URL.Path == "/api/categories":
		_ = json.NewEncoder(w).Encode([]entity.Category{{ID: 1, Name: "Ferretería"}})
	case r.Method == http.MethodGet && r.URL.Path == "/api/suppliers":
		_ = json.NewEncoder(w).Encode([]entity.Supplier{})
	case r.Method == http.MethodGet && r.URL.Path == "/api/users":
		_ = json.NewEncoder(w).Encode([]entity.User{{ID: 1, Username: adminIdentity.Username}, {ID: 2, Username: employeeIdentity.Username}})
	case r.Method == http.MethodGet && r.URL.Path == "/api/users/2":
		_ = json.NewEncoder(w).Encode(entity.User{ID: 2, Username: employeeIdentity.Username, FullName: employeeIdentity.FullName, Roles: "ROLE_EMPLOYEE"})
	case r.Method == http.MethodGet && r.URL.Path == "/api/products/1":
		_ = json.NewEncoder(w).Encode(entity.Product{ID: 1, Code: "P-1", Name: "Tornillo", Quantity: 120, RetailPrice: decimal.NewFromInt(15)})
	case r.Method == http.MethodGet && r.URL.Path == "/api/products/2":
		_ = json.NewEncoder(w).Encode(entity.Product{ID: 2, Code: "P-2", Name: "Tuerca", Quantity: 3, RetailPrice: decimal.NewFromInt(4)})
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/products/"):
		w.WriteHeader(http.StatusNotFound)
	case r.Method == http.MethodGet && r.URL.Path == "/api/transactions":
		_ = json.NewEncoder(w).Encode([]entity.Transaction{{ID: 1, EmployeeName: employeeIdentity.FullName, ClientName: "Ana", ProductCode: "P-1", Quantity: 2, TransactionPrice: decimal.NewFromInt(30)}})
	case r.Method == http.MethodPost && r.URL.Path == "/api/transactions":
		var in dto.CreateTransactionRequest
		_ = json.Unmarshal(body, &in)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(entity.Transaction{ID: 7, ClientName: in.ClientName, ProductCode: "P-1", Quantity: in.Quantity, TransactionPrice: decimal.NewFromInt(int64(15 * in.Quantity))})
	case r.Method == http.MethodPost || r.Method == http.MethodPut:
		w.WriteHeader(map[string]int{http.MethodPost: http.StatusCreated, http.MethodPut: http.StatusOK}[r.Method])
		_, _ = w.Write(body)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Consola armada como en main, contra la API falsa
// ──────────────────────────────────────────────────────────────────────────────

type console struct {
	app      *fiber.App
	store    *session.Store
	api      *fakeAPI
	expiries atomic.Int32
}

func newConsole(t *testing.T) *console {
	t.Helper()
	log := zerolog.Nop()
	c := &console{api: &fakeAPI{t: t}}
	srv := httptest.NewServer(c.api)
	t.Cleanup(srv.Close)

	c.store = session.NewStore(memory.NewSessionRepository(nil), log)
	notices := apphttp.NewSessionNotices()
	transport := api.NewTransport(nil, c.store, api.TransportConfig{
		LoginPath: "/auth/login",
		OnSessionExpired: func(*http.Request) {
			c.expiries.Add(1)
			notices.SessionExpired()
		},
	}, log)
	client := api.NewClient(srv.URL+"/api", api.NewHTTPClient(transport, 5*time.Second))

	c.app = apphttp.NewApp("inventario-console-test", log)
	apphttp.Router(c.app, apphttp.RouterDeps{
		AuthUC:  auth.NewAuthUseCase(api.NewAuthenticator(client, "/auth/login"), c.store, log),
		Guard:   apphttp.NewRouteGuard(c.store, log),
		Notices: notices,
		Catalog: apphttp.Catalog{
			Products:   api.NewResource[entity.Product](client, "/products"),
			Categories: api.NewResource[entity.Category](client, "/categories"),
			Suppliers:  api.NewResource[entity.Supplier](client, "/suppliers"),
			Users:      api.NewResource[entity.User](client, "/users"),

			Transactions: api.NewTransactions(client),
		},
		AppName: "inventario-console-test",
		Log:     log,
	})
	return c
}

func (c *console) loginAs(t *testing.T, identity entity.Identity) {
	t.Helper()
	require.NoError(t, c.store.SetCurrent(identity, tokenFor(t, identity, time.Hour)))
}

func (c *console) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_RedirigeAlInicioDelRol(t *testing.T) {
	cases := map[string]string{
		adminIdentity.Username:    "/admin",
		employeeIdentity.Username: "/employee",
		customerIdentity.Username: "/",
	}
	for username, home := range cases {
		t.Run(username, func(t *testing.T) {
			c := newConsole(t)
			resp := c.do(t, http.MethodPost, "/login", dto.LoginForm{LoginRequest: dto.LoginRequest{Username: username, Password: testPassword}})
			assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
			assert.Equal(t, home, resp.Header.Get("Location"))

			id, ok := c.store.Current()
			require.True(t, ok)
			assert.Equal(t, username, id.Username)
			assert.Empty(t, c.api.lastAuth(), "el login nunca lleva bearer token")
		})
	}
}

func TestLogin_VuelveAReturnUrl(t *testing.T) {
	c := newConsole(t)
	form := dto.LoginForm{LoginRequest: dto.LoginRequest{Username: adminIdentity.Username, Password: testPassword}, ReturnURL: "/admin/products"}
	resp := c.do(t, http.MethodPost, "/login", form)
	assert.Equal(t, "/admin/products", resp.Header.Get("Location"))

	c.store.Clear()
	form.ReturnURL = "//evil.example/robar"
	resp = c.do(t, http.MethodPost, "/login", form)
	assert.Equal(t, "/admin", resp.Header.Get("Location"), "una returnUrl externa se ignora")
}

func TestLogin_CredencialesInvalidas_StoreIntacto(t *testing.T) {
	c := newConsole(t)
	c.loginAs(t, employeeIdentity)
	before := c.store.Snapshot()

	resp := c.do(t, http.MethodPost, "/login", dto.LoginForm{LoginRequest: dto.LoginRequest{Username: adminIdentity.Username, Password: "mala"}})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Code)

	assert.Equal(t, before, c.store.Snapshot())
	assert.Zero(t, c.expiries.Load())
}

func TestLogin_ServidorCaido(t *testing.T) {
	c := newConsole(t)
	c.api.mu.Lock()
	c.api.loginDown = true
	c.api.mu.Unlock()

	resp := c.do(t, http.MethodPost, "/login", dto.LoginForm{LoginRequest: dto.LoginRequest{Username: adminIdentity.Username, Password: testPassword}})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "SERVER_UNAVAILABLE", body.Code)
	_, ok := c.store.Current()
	assert.False(t, ok)
}

func TestLogout(t *testing.T) {
	c := newConsole(t)
	c.loginAs(t, adminIdentity)

	resp := c.do(t, http.MethodPost, "/logout", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	_, ok := c.store.Current()
	assert.False(t, ok)

	resp = c.do(t, http.MethodGet, "/admin", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestSession(t *testing.T) {
	c := newConsole(t)
	c.loginAs(t, employeeIdentity)

	resp := c.do(t, http.MethodGet, "/session", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[dto.SessionResponse](t, resp)
	assert.Equal(t, "empleado_prueba", body.Username)
	assert.Equal(t, "EMPLOYEE", body.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard sobre las secciones
// ──────────────────────────────────────────────────────────────────────────────

func TestGuard_EmpleadoEnAdmin_Access(t *testing.T) {
	c := newConsole(t)
	c.loginAs(t, employeeIdentity)

	resp := c.do(t, http.MethodGet, "/admin/users", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/access", resp.Header.Get("Location"))
	assert.Zero(t, c.api.callCount(), "el guard decide sin red")

	resp = c.do(t, http.MethodGet, "/access", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGuard_SinSesion_LoginConReturnUrl(t *testing.T) {
	c := newConsole(t)
	resp := c.do(t, http.MethodGet, "/employee/profile", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?returnUrl=%2Femployee%2Fprofile", resp.Header.Get("Location"))
}

func TestGuard_TokenVencido_LoginConReturnUrl(t *testing.T) {
	c := newConsole(t)
	require.NoError(t, c.store.SetCurrent(adminIdentity, tokenFor(t, adminIdentity, -time.Second)))

	resp := c.do(t, http.MethodGet, "/admin", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?returnUrl=%2Fadmin", resp.Header.Get("Location"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Augmentor a través de la consola
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI403_CierraSesionYRedirigeUnaVez(t *testing.T) {
	c := newConsole(t)
	c.loginAs(t, adminIdentity)
	c.api.force(http.StatusForbidden)

	resp := c.do(t, http.MethodGet, "/admin/users", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login?returnUrl=%2Fadmin%2Fusers", resp.Header.Get("Location"))
	_, ok := c.store.Current()
	assert.False(t, ok, "un 403 cierra la sesión")
	assert.Equal(t, int32(1), c.expiries.Load())

	calls := c.api.callCount()
	resp = c.do(t, http.MethodGet, "/admin/users", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, calls, c.api.callCount(), "sin sesión el guard corta antes de la API")
	assert.Equal(t, int32(1), c.expiries.Load(), "la redirección por sesión expirada ocurre una vez")

	page := decode[dto.LoginPageResponse](t, c.do(t, http.MethodGet, "/login?returnUrl=%2Fadmin%2Fusers", nil))
	assert.False(t, page.Authenticated)
	assert.Equal(t, "/admin/users", page.ReturnURL)
	assert.NotEmpty(t, page.Notice)

	page = decode[dto.LoginPageResponse](t, c.do(t, http.MethodGet, "/login", nil))
	assert.Empty(t, page.Notice, "el aviso se muestra una sola vez")
}

func TestAPI_AgregaBearerDeLaSesion(t *testing.T) {
	c := newConsole(t)
	c.loginAs(t, adminIdentity)
	tok, _ := c.store.Token()

	resp := c.do(t, http.MethodPost, "/admin/products", entity.Product{Code: "P-9", Name: "Arandela"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Bearer "+tok, c.api.lastAuth())
}

// ──────────────────────────────────────────────────────────────────────────────
// Secciones
// ──────────────────────────────────────────────────────────────────────────────

func TestAdminDashboard(t *testing.T) {
	c := newConsole(t)
	c.loginAs(t, adminIdentity)

	resp := c.do(t, http.MethodGet, "/admin", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[dto.AdminDashboard](t, resp)
	assert.Equal(t, "administrador_prueba", body.Username)
	assert.Equal(t, []int{2, 1, 0, 2}, []int{body.Products, body.Categories, body.Suppliers, body.Users})
	assert.Equal(t, 123, body.StockUnits)
	assert.True(t, decimal.RequireFromString("1207.5").Equal(body.StockCost), "costo: %s", body.StockCost)
	assert.True(t, decimal.NewFromInt(1812).Equal(body.StockRetail), "venta: %s", body.StockRetail)
	assert.True(t, decimal.RequireFromString("604.5").Equal(body.StockMargin))
}

func TestAdminCRUD_Errores(t *testing.T) {
	c := newConsole(t)
	c.loginAs(t, adminIdentity)

	resp := c.do(t, http.MethodGet, "/admin/products/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = c.do(t, http.MethodGet, "/admin/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = c.do(t, http.MethodDelete, "/admin/categories/1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	c.api.force(http.StatusBadGateway)
	resp = c.do(t, http.MethodGet, "/admin/suppliers", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	_, ok := c.store.Current()
	assert.True(t, ok, "un 5xx no cierra la sesión")
}

func TestEmployeeDashboard_StockBajo(t *testing.T) {
	c := newConsole(t)
	c.loginAs(t, employeeIdentity)

	resp := c.do(t, http.MethodGet, "/employee", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[dto.EmployeeDashboard](t, resp)
	assert.Equal(t, 2, body.Products)
	assert.Equal(t, 1, body.LowStockItems)
	require.Len(t, body.LowStock, 1)
	assert.Equal(t, "P-2", body.LowStock[0].Code)
}

func TestEmployeeProfile_Actualiza(t *testing.T) {
	c := newConsole(t)
	c.loginAs(t, employeeIdentity)

	resp := c.do(t, http.MethodPut, "/employee/profile", dto.ProfileUpdateRequest{FullName: "Empleada Renombrada"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[dto.SessionResponse](t, resp)
	assert.Equal(t, "Empleada Renombrada", body.FullName)

	id, ok := c.store.Current()
	require.True(t, ok)
	assert.Equal(t, "Empleada Renombrada", id.FullName, "la sesión refleja el perfil nuevo")

	c.api.mu.Lock()
	sent := string(c.api.lastBody)
	c.api.mu.Unlock()
	assert.Contains(t, sent, `"full_name":"Empleada Renombrada"`)
	assert.NotContains(t, sent, "password", "sin password nuevo no se envía")
}

func TestEmployeeProfile_Validacion(t *testing.T) {
	c := newConsole(t)
	c.loginAs(t, employeeIdentity)

	resp := c.do(t, http.MethodPut, "/employee/profile", dto.ProfileUpdateRequest{FullName: "Ana", Password: "corta"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, c.api.callCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func (f *fakeAPI) sentBody() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return string(f.lastBody)
}

func TestEmployeeTransaction_RegistraANombreDeLaSesion(t *testing.T) {
	c := newConsole(t)
	c.loginAs(t, employeeIdentity)

	resp := c.do(t, http.MethodPost, "/employee/transactions", dto.CreateTransactionRequest{UserID: 99, ClientName: "  Ana  ", ProductID: 1, Quantity: 2})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	tx := decode[entity.Transaction](t, resp)
	assert.Equal(t, int64(7), tx.ID)
	assert.True(t, decimal.NewFromInt(30).Equal(tx.TransactionPrice))

	sent := c.api.sentBody()
	assert.Contains(t, sent, `"userId":2`, "el usuario sale de la sesión, no del cuerpo")
	assert.Contains(t, sent, `"clientName":"Ana"`)
	assert.Equal(t, "Bearer "+mustToken(t, c), c.api.lastAuth())
}

func TestEmployeeTransaction_SinIDEnSesionBuscaPorUsername(t *testing.T) {
	c := newConsole(t)
	withoutID := employeeIdentity
	withoutID.ID = 0
	c.loginAs(t, withoutID)

	resp := c.do(t, http.MethodPost, "/employee/transactions", dto.CreateTransactionRequest{ClientName: "Ana", ProductID: 1, Quantity: 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, c.api.called("GET /api/users"))
	assert.Contains(t, c.api.sentBody(), `"userId":2`)
}

func TestEmployeeTransaction_StockInsuficiente(t *testing.T) {
	c := newConsole(t)
	c.loginAs(t, employeeIdentity)

	resp := c.do(t, http.MethodPost, "/employee/transactions", dto.CreateTransactionRequest{ClientName: "Ana", ProductID: 2, Quantity: 5})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	assert.False(t, c.api.called("POST /api/transactions"))
}

func TestEmployeeTransaction_Validacion(t *testing.T) {
	cases := map[string]dto.CreateTransactionRequest{
		"sin cliente":    {ClientName: "   ", ProductID: 1, Quantity: 1},
		"sin producto":   {ClientName: "Ana", Quantity: 1},
		"cantidad cero":  {ClientName: "Ana", ProductID: 1},
		"cantidad menor": {ClientName: "Ana", ProductID: 1, Quantity: -2},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			c := newConsole(t)
			c.loginAs(t, employeeIdentity)
			resp := c.do(t, http.MethodPost, "/employee/transactions", in)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Zero(t, c.api.callCount())
		})
	}
}

func TestEmployeeTransaction_ProductoInexistente(t *testing.T) {
	c := newConsole(t)
	c.loginAs(t, employeeIdentity)

	resp := c.do(t, http.MethodPost, "/employee/transactions", dto.CreateTransactionRequest{ClientName: "Ana", ProductID: 99, Quantity: 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, c.api.called("POST /api/transactions"))
}

func TestTransactions_Listado(t *testing.T) {
	c := newConsole(t)
	c.loginAs(t, employeeIdentity)
	resp := c.do(t, http.MethodGet, "/employee/transactions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]entity.Transaction](t, resp), 1)

	c.loginAs(t, adminIdentity)
	resp = c.do(t, http.MethodGet, "/admin/transactions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]entity.Transaction](t, resp), 1)

	resp = c.do(t, http.MethodPost, "/employee/transactions", dto.CreateTransactionRequest{ClientName: "Ana", ProductID: 1, Quantity: 1})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, apphttp.PathAccess, resp.Header.Get("Location"), "ADMIN no registra ventas")
}

func mustToken(t *testing.T, c *console) string {
	t.Helper()
	tok, ok := c.store.Token()
	require.True(t, ok)
	return tok
}

// ──────────────────────────────────────────────────────────────────────────────
// Operación
// ──────────────────────────────────────────────────────────────────────────────

func TestHealthYMetrics(t *testing.T) {
	c := newConsole(t)

	resp := c.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = c.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "go_goroutines")
}
