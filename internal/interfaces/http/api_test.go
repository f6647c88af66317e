package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/despachosur/facturacion-api/internal/application/auth"
	"github.com/despachosur/facturacion-api/internal/application/billing"
	"github.com/despachosur/facturacion-api/internal/application/dto"
	"github.com/despachosur/facturacion-api/internal/domain"
	"github.com/despachosur/facturacion-api/internal/domain/entity"
	"github.com/despachosur/facturacion-api/internal/domain/repository"

	apphttp "github.com/despachosur/facturacion-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	items map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{items: make(map[string]*entity.User)}
}

func (m *memUserRepo) Create(u *entity.User) error {
	for _, e := range m.items {
		if e.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	m.items[u.ID] = u
	return nil
}

func (m *memUserRepo) GetByID(id string) (*entity.User, error) {
	return m.items[id], nil
}

func (m *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range m.items {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type memClienteRepo struct {
	items map[string]*entity.Cliente
}

func newMemClienteRepo() *memClienteRepo {
	return &memClienteRepo{items: make(map[string]*entity.Cliente)}
}

func (m *memClienteRepo) Create(c *entity.Cliente) error {
	m.items[c.ID] = c
	return nil
}

func (m *memClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return m.items[id], nil
}

func (m *memClienteRepo) GetByCUIT(cuit string) (*entity.Cliente, error) {
	for _, c := range m.items {
		if c.CUIT == cuit {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memClienteRepo) List(filter repository.ClienteFilter) ([]*entity.Cliente, error) {
	var list []*entity.Cliente
	for _, c := range m.items {
		if filter.Tipo != "" && c.Tipo != filter.Tipo {
			continue
		}
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].RazonSocial < list[j].RazonSocial })
	return list, nil
}

func (m *memClienteRepo) Update(c *entity.Cliente) error {
	m.items[c.ID] = c
	return nil
}

func (m *memClienteRepo) Delete(id string) error {
	delete(m.items, id)
	return nil
}

type memPrefacturaRepo struct {
	items map[string]*entity.Prefactura
}

func newMemPrefacturaRepo() *memPrefacturaRepo {
	return &memPrefacturaRepo{items: make(map[string]*entity.Prefactura)}
}

func (m *memPrefacturaRepo) Create(p *entity.Prefactura) error {
	m.items[p.ID] = p
	return nil
}

func (m *memPrefacturaRepo) GetByID(id string) (*entity.Prefactura, error) {
	return m.items[id], nil
}

func (m *memPrefacturaRepo) List(filter repository.PrefacturaFilter) ([]*entity.Prefactura, error) {
	var list []*entity.Prefactura
	for _, p := range m.items {
		if filter.ClienteID != "" && p.ClienteID != filter.ClienteID {
			continue
		}
		if filter.Concepto != "" && p.Concepto != filter.Concepto {
			continue
		}
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Fecha.After(list[j].Fecha) })
	return list, nil
}

func (m *memPrefacturaRepo) Update(p *entity.Prefactura) error {
	m.items[p.ID] = p
	return nil
}

func (m *memPrefacturaRepo) Delete(id string) error {
	delete(m.items, id)
	return nil
}

type memFacturaRepo struct {
	items map[string]*entity.Factura
}

func newMemFacturaRepo() *memFacturaRepo {
	return &memFacturaRepo{items: make(map[string]*entity.Factura)}
}

func (m *memFacturaRepo) Create(f *entity.Factura) error {
	m.items[f.ID] = f
	return nil
}

func (m *memFacturaRepo) GetByID(id string) (*entity.Factura, error) {
	return m.items[id], nil
}

func (m *memFacturaRepo) List(filter repository.FacturaFilter) ([]*entity.Factura, error) {
	var list []*entity.Factura
	for _, f := range m.items {
		if filter.ClienteID != "" && f.ClienteID != filter.ClienteID {
			continue
		}
		if filter.Estado != "" && f.Estado != filter.Estado {
			continue
		}
		list = append(list, f)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].FechaEmision.After(list[j].FechaEmision) })
	return list, nil
}

func (m *memFacturaRepo) Update(id string, patch *entity.FacturaPatch) error {
	f, ok := m.items[id]
	if !ok {
		return nil
	}
	if patch.TipoComprobante != nil {
		f.TipoComprobante = *patch.TipoComprobante
	}
	if patch.PuntoVenta != nil {
		f.PuntoVenta = *patch.PuntoVenta
	}
	if patch.NumeroComprobante != nil {
		f.NumeroComprobante = *patch.NumeroComprobante
	}
	if patch.FechaEmision != nil {
		f.FechaEmision = *patch.FechaEmision
	}
	if patch.ClienteID != nil {
		f.ClienteID = *patch.ClienteID
	}
	if patch.PrefacturaID != nil {
		f.PrefacturaID = *patch.PrefacturaID
	}
	if patch.CondicionVenta != nil {
		f.CondicionVenta = *patch.CondicionVenta
	}
	if patch.Cantidad != nil {
		f.Cantidad = *patch.Cantidad
	}
	if patch.ValorUnitario != nil {
		f.ValorUnitario = *patch.ValorUnitario
	}
	if patch.Subtotal != nil {
		f.Subtotal = *patch.Subtotal
	}
	if patch.IVA != nil {
		f.IVA = *patch.IVA
	}
	if patch.Total != nil {
		f.Total = *patch.Total
	}
	if patch.CAE != nil {
		f.CAE = *patch.CAE
	}
	if patch.FechaVencimientoCAE != nil {
		f.FechaVencimientoCAE = *patch.FechaVencimientoCAE
	}
	if patch.Observaciones != nil {
		f.Observaciones = *patch.Observaciones
	}
	if patch.Estado != nil {
		f.Estado = *patch.Estado
	}
	return nil
}

func (m *memFacturaRepo) Delete(id string) error {
	delete(m.items, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildAPI arma la app completa con el router real y repos en memoria.
func buildAPI() *fiber.App {
	users := newMemUserRepo()
	clientes := newMemClienteRepo()
	prefacturas := newMemPrefacturaRepo()
	facturas := newMemFacturaRepo()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(users, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		ClienteUC:    billing.NewClienteUseCase(clientes),
		PrefacturaUC: billing.NewPrefacturaUseCase(prefacturas, clientes, false),
		FacturaUC:    billing.NewFacturaUseCase(facturas, clientes, prefacturas, false),
		JWTSecret:    testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
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

func loginAs(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email": email, "password": "secreto123", "nombre": "Operador",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": email, "password": "secreto123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login dto.LoginResponse
	decodeBody(t, resp, &login)
	require.NotEmpty(t, login.Token)
	return login.Token
}

func facturaPayload(clienteID, prefacturaID string) map[string]any {
	return map[string]any{
		"tipoComprobante":     "A",
		"puntoVenta":          "0003",
		"numeroComprobante":   "00001234",
		"fechaEmision":        "2024-05-02",
		"clienteId":           clienteID,
		"prefacturaId":        prefacturaID,
		"condicionVenta":      "Contado",
		"cantidad":            2,
		"valorUnitario":       "100.50",
		"cae":                 "74123456789012",
		"fechaVencimientoCae": "2024-05-12",
		"estado":              "emitida",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo: registro → login → cliente → prefactura → factura
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_FlujoCompleto(t *testing.T) {
	app := buildAPI()
	token := loginAs(t, app, "operador@despachosur.test")

	// Cliente: el CUIT entra con guiones y se persiste normalizado.
	resp := doJSON(t, app, http.MethodPost, "/api/clientes", token, map[string]any{
		"tipo":          "cliente",
		"cuit":          "20-12345678-6",
		"razon_social":  "Importadora del Sur SA",
		"condicion_iva": entity.CondicionResponsableInscripto,
		"domicilio":     "Av. Corrientes 1234",
		"localidad":     "CABA",
		"rubro":         "Electrónica",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cliente dto.ClienteResponse
	decodeBody(t, resp, &cliente)
	assert.Equal(t, "20123456786", cliente.CUIT)

	// Prefactura con el cliente embebido en la respuesta.
	resp = doJSON(t, app, http.MethodPost, "/api/prefacturas", token, map[string]any{
		"cliente_id":  cliente.ID,
		"fecha":       "2024-05-01",
		"concepto":    "importacion",
		"descripcion": "Despacho contenedor 40 pies",
		"cantidad":    1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var prefactura dto.PrefacturaResponse
	decodeBody(t, resp, &prefactura)
	require.NotNil(t, prefactura.Cliente)
	assert.Equal(t, "Importadora del Sur SA", prefactura.Cliente.RazonSocial)

	// Factura: los totales del payload se descartan y se recalculan en el
	// servidor a partir de cantidad y valor unitario.
	in := facturaPayload(cliente.ID, prefactura.ID)
	in["subtotal"] = 1
	in["iva"] = 1
	in["total"] = 999999
	resp = doJSON(t, app, http.MethodPost, "/api/facturas", token, in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var factura dto.FacturaResponse
	decodeBody(t, resp, &factura)
	assert.True(t, decimal.RequireFromString("201").Equal(factura.Subtotal))
	assert.True(t, decimal.RequireFromString("42.21").Equal(factura.IVA))
	assert.True(t, decimal.RequireFromString("243.21").Equal(factura.Total))
	require.NotNil(t, factura.Cliente)
	require.NotNil(t, factura.Prefactura)

	// Actualización parcial por HTTP: solo cambia el estado.
	resp = doJSON(t, app, http.MethodPut, "/api/facturas/"+factura.ID, token, map[string]any{
		"estado": "pagada",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var actualizada dto.FacturaResponse
	decodeBody(t, resp, &actualizada)
	assert.Equal(t, "pagada", actualizada.Estado)
	assert.True(t, factura.Total.Equal(actualizada.Total), "los totales no cambian")

	resp = doJSON(t, app, http.MethodGet, "/api/facturas", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.FacturaResponse
	decodeBody(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, factura.ID, list[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de errores de dominio a estados HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CampoFaltante_Retorna400(t *testing.T) {
	app := buildAPI()
	token := loginAs(t, app, "operador@despachosur.test")

	in := facturaPayload("c-x", "p-x")
	delete(in, "cae")
	resp := doJSON(t, app, http.MethodPost, "/api/facturas", token, in)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	decodeBody(t, resp, &errResp)
	assert.Equal(t, "VALIDATION", errResp.Code)
	assert.Contains(t, errResp.Message, "cae")
}

func TestAPI_ReferenciaInexistente_Retorna404(t *testing.T) {
	app := buildAPI()
	token := loginAs(t, app, "operador@despachosur.test")

	resp := doJSON(t, app, http.MethodPost, "/api/facturas", token, facturaPayload("no-existe", "tampoco"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/clientes/no-existe", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// El logout no requiere sesión: sin token igual responde 200.
func TestAPI_LogoutSinToken_Retorna200(t *testing.T) {
	app := buildAPI()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.OkResponse
	decodeBody(t, resp, &out)
	assert.True(t, out.Ok)
}
