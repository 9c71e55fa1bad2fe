package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rodrigoquadros/barber-agenda/internal/config"
	dbpkg "github.com/rodrigoquadros/barber-agenda/internal/db"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	cfg := &config.Config{
		JWTSecret:       "segredo-de-teste",
		JWTTTL:          8 * time.Hour,
		LoginRateLimit:  1000,
		LoginRateWindow: time.Minute,
	}

	logger := zerolog.Nop()

	r := gin.New()
	RegisterRoutes(r, db, cfg, &logger)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := map[string]any{}
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
	}
	return w, resp
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w, _ := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{
		"name":     "Barbeiro Teste",
		"email":    email,
		"password": "123456",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, resp := doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email":    email,
		"password": "123456",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	tok, _ := resp["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

func TestBookingScenario(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "barbeiro1@test.com")

	// cria João às 14:00
	w, resp := doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"client_name": "João",
		"date":        "2025-09-21",
		"time":        "14:00",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, resp["success"])
	id := resp["appointmentId"].(float64)
	require.NotZero(t, id)

	// mesmo slot: 400 Horário já ocupado
	w, resp = doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"client_name": "Maria",
		"date":        "2025-09-21",
		"time":        "14:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Horário já ocupado", resp["error"])

	// 14:30 passa
	w, _ = doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"client_name": "Maria",
		"date":        "2025-09-21",
		"time":        "14:30",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// cancela o das 14:00
	w, resp = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/appointments/%.0f", id), token, gin.H{
		"status": "cancelled",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, resp["success"])

	// slot liberado: novo agendamento às 14:00 passa
	w, _ = doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"client_name": "Pedro",
		"date":        "2025-09-21",
		"time":        "14:00",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := newTestServer(t)
	registerAndLogin(t, r, "barbeiro2@test.com")

	// senha errada e email inexistente: mesma resposta genérica
	w, resp := doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email":    "barbeiro2@test.com",
		"password": "senha-errada",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Credenciais inválidas", resp["error"])

	w, resp = doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{
		"email":    "ninguem@test.com",
		"password": "senha-errada",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Credenciais inválidas", resp["error"])
}

func TestAuthGate(t *testing.T) {
	r := newTestServer(t)

	// sem credencial: 401
	w, _ := doJSON(t, r, http.MethodGet, "/api/appointments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// credencial inválida: 403
	w, _ = doJSON(t, r, http.MethodGet, "/api/appointments", "nao-e-um-token", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOwnershipIsolation(t *testing.T) {
	r := newTestServer(t)
	tokenA := registerAndLogin(t, r, "barbeiroA@test.com")
	tokenB := registerAndLogin(t, r, "barbeiroB@test.com")

	w, resp := doJSON(t, r, http.MethodPost, "/api/appointments", tokenA, gin.H{
		"client_name": "João",
		"date":        "2025-09-21",
		"time":        "14:00",
	})
	require.Equal(t, http.StatusOK, w.Code)
	id := resp["appointmentId"].(float64)

	// B não vê o agendamento de A
	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	req.Header.Set("Authorization", "Bearer "+tokenB)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Empty(t, rows)

	// B não atualiza o agendamento de A: 404, igual a inexistente
	w, _ = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/appointments/%.0f", id), tokenB, gin.H{
		"status": "cancelled",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateValidation(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "barbeiroC@test.com")

	w, resp := doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"client_name": "João",
		"date":        "2025-09-21",
		"time":        "14:00",
	})
	require.Equal(t, http.StatusOK, w.Code)
	id := resp["appointmentId"].(float64)

	// corpo vazio: nenhuma atualização fornecida
	w, resp = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/appointments/%.0f", id), token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Nenhuma atualização fornecida", resp["error"])

	// status fora do vocabulário
	w, _ = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/appointments/%.0f", id), token, gin.H{
		"status": "feito",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// campos obrigatórios do create
	w, resp = doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"client_name": "João",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Nome do cliente, data e hora são obrigatórios", resp["error"])
}

func TestServicesAndClients(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "barbeiroD@test.com")

	// listagem de serviços é pública
	w, _ := doJSON(t, r, http.MethodGet, "/api/services", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// criação exige credencial
	w, _ = doJSON(t, r, http.MethodPost, "/api/services", "", gin.H{
		"name":  "Barba",
		"price": 20.0,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, resp := doJSON(t, r, http.MethodPost, "/api/services", token, gin.H{
		"name":  "Barba",
		"price": 20.0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotZero(t, resp["serviceId"])

	w, resp = doJSON(t, r, http.MethodPost, "/api/services", token, gin.H{
		"name": "Sem preço",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Nome e preço são obrigatórios", resp["error"])

	w, resp = doJSON(t, r, http.MethodPost, "/api/clients", token, gin.H{
		"name":  "João Silva",
		"phone": "(11) 99999-0001",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotZero(t, resp["clientId"])

	w, _ = doJSON(t, r, http.MethodGet, "/api/clients", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDashboardAndFinances(t *testing.T) {
	r := newTestServer(t)
	token := registerAndLogin(t, r, "barbeiroE@test.com")

	w, resp := doJSON(t, r, http.MethodPost, "/api/services", token, gin.H{
		"name":  "Corte Masculino",
		"price": 30.0,
	})
	require.Equal(t, http.StatusOK, w.Code)
	serviceID := resp["serviceId"].(float64)

	w, resp = doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"client_name": "João",
		"service_id":  serviceID,
		"date":        time.Now().Format("2006-01-02"),
		"time":        "14:00",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	id := resp["appointmentId"].(float64)

	w, _ = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/appointments/%.0f", id), token, gin.H{
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// atendimento concluído vira receita
	w, resp = doJSON(t, r, http.MethodGet, "/api/finances", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp["total"])
	rows := resp["data"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, 30.0, row["amount"])
	assert.Equal(t, "João", row["client_name"])

	// e aparece no resumo do dia
	w, resp = doJSON(t, r, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := resp["stats"].(map[string]any)
	assert.Equal(t, float64(1), stats["total_appointments"])
	assert.Equal(t, float64(1), stats["completed_appointments"])
	assert.Equal(t, float64(0), stats["pending_appointments"])
}

func TestLoginRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, dbpkg.Migrate(db))

	cfg := &config.Config{
		JWTSecret:       "segredo-de-teste",
		JWTTTL:          8 * time.Hour,
		LoginRateLimit:  2,
		LoginRateWindow: time.Minute,
	}
	logger := zerolog.Nop()

	r := gin.New()
	RegisterRoutes(r, db, cfg, &logger)

	body := gin.H{"email": "x@test.com", "password": "errada"}

	for i := 0; i < 2; i++ {
		w, _ := doJSON(t, r, http.MethodPost, "/api/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w, resp := doJSON(t, r, http.MethodPost, "/api/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "too_many_attempts", resp["error_code"])
}
