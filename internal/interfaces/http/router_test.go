package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/internal/application/analytics"
	"github.com/jhoicas/inventario-ledger/internal/application/auth"
	"github.com/jhoicas/inventario-ledger/internal/application/dto"
	"github.com/jhoicas/inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/inventario-ledger/internal/application/usecase"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/fixtures"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-ledger/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/inventario-ledger/internal/interfaces/http"
	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// newAPI arma la API completa sobre el almacén en memoria sembrado.
func newAPI(t *testing.T, loginRateLimit int) *fiber.App {
	t.Helper()
	seed, err := fixtures.Load()
	require.NoError(t, err)

	store := memory.NewStore(seed)
	productRepo := memory.NewProductRepository(store)
	providerRepo := memory.NewProviderRepository(store)
	userRepo := memory.NewUserRepository(store)
	movementRepo := memory.NewMovementRepository(store)
	txRunner := memory.NewTxRunner(store)

	dashboardUC := analytics.NewDashboardUseCase(memory.NewSnapshotReader(store))
	app := apphttp.NewApp(apphttp.ServerConfig{AppName: "test", Log: logger.Nop()})
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(productRepo, providerRepo, txRunner),
		ProviderUC:  usecase.NewProviderUseCase(providerRepo),
		UserUC:      usecase.NewUserUseCase(userRepo),
		SaleUC:      usecase.NewSaleUseCase(memory.NewSaleRepository(store), productRepo, userRepo),
		LedgerUC:    inventory.NewLedgerUseCase(txRunner, productRepo, userRepo, movementRepo),
		DashboardUC: dashboardUC,
		ReportUC:    analytics.NewReportUseCase(dashboardUC, pdf.NewMarotoReportGenerator()),
		AuthUC: auth.NewAuthUseCase(userRepo, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		JWTSecret:      testJWTSecret,
		LoginRateLimit: loginRateLimit,
	})
	app.Use(apphttp.NotFound)
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
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

func adminToken(t *testing.T) string   { return tokenFor(t, "1", "admin") }
func usuarioToken(t *testing.T) string { return tokenFor(t, "2", "usuario") }

// ──────────────────────────────────────────────────────────────────────────────
// Rutas y autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_RutaDesconocida_Retorna404(t *testing.T) {
	app := newAPI(t, 0)

	for _, path := range []string{"/api/nada", "/otra/cosa"} {
		resp := call(t, app, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		body := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, "Ruta no encontrada", body.Message)
	}
}

func TestRouter_RutasProtegidasSinToken_Retorna401(t *testing.T) {
	app := newAPI(t, 0)

	for _, path := range []string{"/api/products", "/api/providers", "/api/movements", "/api/users", "/api/dashboard/summary", "/api/sales"} {
		resp := call(t, app, http.MethodGet, path, "", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestRouter_UsuariosSoloAdmin(t *testing.T) {
	app := newAPI(t, 0)

	resp := call(t, app, http.MethodGet, "/api/users", usuarioToken(t), nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/users", adminToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "$2a$")

	var users []dto.UserResponse
	require.NoError(t, json.Unmarshal(raw, &users))
	assert.Len(t, users, 3)
}

func TestRouter_RolVigenteNoElDelToken(t *testing.T) {
	app := newAPI(t, 0)
	adminDelToken := tokenFor(t, "3", "admin")

	// María es usuario en el almacén aunque el token diga admin.
	resp := call(t, app, http.MethodGet, "/api/users", adminDelToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = call(t, app, http.MethodPut, "/api/users/3", adminToken(t), map[string]any{"rol": "admin"})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/users", tokenFor(t, "3", "usuario"), nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "el ascenso aplica sin nuevo login")
}

func TestRouter_UsuarioEliminadoPierdeAcceso(t *testing.T) {
	app := newAPI(t, 0)
	token := tokenFor(t, "3", "usuario")

	resp := call(t, app, http.MethodDelete, "/api/users/3", adminToken(t), nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/movements", token,
		map[string]any{"productoId": "1", "tipo": "entrada", "cantidad": 1, "motivo": "Reposición"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decode[dto.ErrorResponse](t, resp).Code)

	resp = call(t, app, http.MethodGet, "/api/products/1", adminToken(t), nil)
	assert.Equal(t, 25, decode[dto.ProductResponse](t, resp).Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_Login(t *testing.T) {
	app := newAPI(t, 0)

	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "admin@inventario.com", Password: fixtures.DefaultPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	session := decode[dto.LoginResponse](t, resp)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "admin", session.User.Rol)

	// el token emitido sirve para las rutas protegidas
	resp = call(t, app, http.MethodGet, "/api/users", "Bearer "+session.Token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "admin@inventario.com", Password: "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Credenciales inválidas", decode[dto.ErrorResponse](t, resp).Message)
}

func TestRouter_LoginCuerpoInvalido_Retorna400(t *testing.T) {
	app := newAPI(t, 0)

	resp := call(t, app, http.MethodPost, "/api/auth/login", "", "{no es json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRouter_LoginLimitado_Retorna429(t *testing.T) {
	app := newAPI(t, 2)
	in := dto.LoginRequest{Email: "admin@inventario.com", Password: "incorrecta"}

	for i := 0; i < 2; i++ {
		resp := call(t, app, http.MethodPost, "/api/auth/login", "", in)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", in)
	resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestRouter_Registro(t *testing.T) {
	app := newAPI(t, 0)
	in := dto.RegisterRequest{Nombre: "Pedro Pérez", Email: "pedro@inventario.com", Password: "secreto1", ConfirmPassword: "secreto1"}

	resp := call(t, app, http.MethodPost, "/api/auth/register", "", in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	session := decode[dto.LoginResponse](t, resp)
	assert.Equal(t, "usuario", session.User.Rol)

	resp = call(t, app, http.MethodPost, "/api/auth/register", "", in)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "EMAIL_EXISTS", decode[dto.ErrorResponse](t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_RegistrarEntrada_Retorna201(t *testing.T) {
	app := newAPI(t, 0)
	in := map[string]any{"productoId": "1", "tipo": "entrada", "cantidad": 10, "motivo": "Reposición"}

	resp := call(t, app, http.MethodPost, "/api/movements", usuarioToken(t), in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decode[dto.RecordMovementResponse](t, resp)
	assert.Equal(t, 35, out.NuevoStock)
	assert.Equal(t, "2", out.Movimiento.UsuarioID)
	assert.Equal(t, "Usuario Normal", out.Movimiento.UsuarioNombre)

	resp = call(t, app, http.MethodGet, "/api/products/1", usuarioToken(t), nil)
	assert.Equal(t, 35, decode[dto.ProductResponse](t, resp).Stock)
}

func TestRouter_SalidaSinStock_Retorna400(t *testing.T) {
	app := newAPI(t, 0)
	in := map[string]any{"productoId": "2", "tipo": "salida", "cantidad": 8, "motivo": "Venta"}

	resp := call(t, app, http.MethodPost, "/api/movements", usuarioToken(t), in)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Stock insuficiente. Disponible: 3 unidades", decode[dto.ErrorResponse](t, resp).Message)

	resp = call(t, app, http.MethodGet, "/api/products/2", usuarioToken(t), nil)
	assert.Equal(t, 3, decode[dto.ProductResponse](t, resp).Stock)
}

func TestRouter_MovimientoInvalido_Retorna400(t *testing.T) {
	app := newAPI(t, 0)
	in := map[string]any{"productoId": "1", "tipo": "entrada", "cantidad": "abc", "motivo": "x"}

	resp := call(t, app, http.MethodPost, "/api/movements", usuarioToken(t), in)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "La cantidad debe ser un número mayor a 0", decode[dto.ErrorResponse](t, resp).Message)
}

func TestRouter_MovimientoConCamposExtraYCharset_Retorna201(t *testing.T) {
	app := newAPI(t, 0)
	body := `{"productoId":"1","tipo":"entrada","cantidad":"5","motivo":"Reposición","nota":"ignorada"}`

	req := httptest.NewRequest(http.MethodPost, "/api/movements", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", usuarioToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 30, decode[dto.RecordMovementResponse](t, resp).NuevoStock)
}

func TestRouter_MovimientoSinContentType_Retorna400(t *testing.T) {
	app := newAPI(t, 0)
	body := `{"productoId":"1","tipo":"entrada","cantidad":5,"motivo":"Reposición"}`

	req := httptest.NewRequest(http.MethodPost, "/api/movements", bytes.NewBufferString(body))
	req.Header.Set("Authorization", usuarioToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRouter_EntradaQueDesbordaElStock_Retorna400(t *testing.T) {
	app := newAPI(t, 0)
	in := map[string]any{"productoId": "1", "tipo": "entrada", "cantidad": "9223372036854775807", "motivo": "Reposición"}

	resp := call(t, app, http.MethodPost, "/api/movements", usuarioToken(t), in)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "La cantidad supera el stock máximo permitido", decode[dto.ErrorResponse](t, resp).Message)
}

func TestRouter_ListarMovimientosConFiltro(t *testing.T) {
	app := newAPI(t, 0)

	resp := call(t, app, http.MethodGet, "/api/movements?type=exit", usuarioToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.MovementResponse](t, resp), 4)

	resp = call(t, app, http.MethodGet, "/api/movements?tipo=otro", usuarioToken(t), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_ActualizarProductoConCampoDesconocido_Retorna400(t *testing.T) {
	app := newAPI(t, 0)

	resp := call(t, app, http.MethodPut, "/api/products/1", usuarioToken(t), map[string]any{"nombre": "Nuevo", "sku": "X"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Campo no permitido: sku", decode[dto.ErrorResponse](t, resp).Message)

	resp = call(t, app, http.MethodGet, "/api/products/1", usuarioToken(t), nil)
	assert.Equal(t, "Laptop HP ProBook", decode[dto.ProductResponse](t, resp).Nombre)
}

func TestRouter_CrudProducto(t *testing.T) {
	app := newAPI(t, 0)
	tok := usuarioToken(t)
	in := map[string]any{"nombre": "Hub USB-C", "precio": 450, "stock": 10, "stockMinimo": 2, "categoria": "Accesorios", "proveedorId": "2"}

	resp := call(t, app, http.MethodPost, "/api/products", tok, in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Suministros del Norte", created.ProveedorNombre)

	resp = call(t, app, http.MethodPut, "/api/products/"+created.ID, tok, map[string]any{"stock": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.ProductResponse](t, resp).StockBajo)

	resp = call(t, app, http.MethodDelete, "/api/products/"+created.ID, tok, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/products/"+created.ID, tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Producto no encontrado", decode[dto.ErrorResponse](t, resp).Message)
}

func TestRouter_FiltrarProductosStockBajo(t *testing.T) {
	app := newAPI(t, 0)

	resp := call(t, app, http.MethodGet, "/api/products?lowStock=true", usuarioToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.ProductResponse](t, resp), 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Proveedores
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_EliminarProveedorDejaProductosSinProveedor(t *testing.T) {
	app := newAPI(t, 0)
	tok := usuarioToken(t)

	resp := call(t, app, http.MethodDelete, "/api/providers/3", tok, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/products/5", tok, nil)
	assert.Equal(t, "Sin proveedor", decode[dto.ProductResponse](t, resp).ProveedorNombre)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard y reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_Dashboard(t *testing.T) {
	app := newAPI(t, 0)
	tok := usuarioToken(t)

	resp := call(t, app, http.MethodGet, "/api/dashboard/low-stock", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.ProductResponse](t, resp), 3)

	resp = call(t, app, http.MethodGet, "/api/dashboard/recent?limit=2", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	recent := decode[[]dto.MovementResponse](t, resp)
	require.Len(t, recent, 2)
	assert.Equal(t, "8", recent[0].ID)

	resp = call(t, app, http.MethodGet, "/api/dashboard/recent?limit=0", tok, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/dashboard/monthly?ref=2024-13-01", tok, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/dashboard/summary", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decode[dto.DashboardSummaryDTO](t, resp)
	assert.Equal(t, 8, summary.TotalProductos)
	assert.Equal(t, 3, summary.TotalProveedores)
}

func TestRouter_ReporteInventarioPDF(t *testing.T) {
	app := newAPI(t, 0)

	resp := call(t, app, http.MethodGet, "/api/reports/inventory.pdf", usuarioToken(t), nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventario-")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}
