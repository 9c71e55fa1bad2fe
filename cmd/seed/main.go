package main

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/rodrigoquadros/barber-agenda/internal/config"
	dbpkg "github.com/rodrigoquadros/barber-agenda/internal/db"
	"github.com/rodrigoquadros/barber-agenda/internal/logging"
	"github.com/rodrigoquadros/barber-agenda/internal/models"
)

// Seed idempotente: serviços e clientes de exemplo + usuário inicial.
// Rode quantas vezes quiser.
func main() {

	cfg := config.Load()
	logger := logging.New(cfg)
	db := dbpkg.NewDB(cfg)

	services := []models.Service{
		{Name: "Corte Masculino", Price: 30.00, DurationMin: 30},
		{Name: "Corte Feminino", Price: 40.00, DurationMin: 45},
		{Name: "Barba", Price: 20.00, DurationMin: 20},
		{Name: "Combo Corte + Barba", Price: 45.00, DurationMin: 50},
		{Name: "Lavagem + Corte", Price: 35.00, DurationMin: 40},
		{Name: "Corte Infantil", Price: 25.00, DurationMin: 25},
	}

	for _, svc := range services {
		res := db.Where("name = ?", svc.Name).FirstOrCreate(&svc)
		if res.Error != nil {
			logger.Error().Err(res.Error).Str("service", svc.Name).Msg("failed to seed service")
			continue
		}
		if res.RowsAffected > 0 {
			logger.Info().Str("service", svc.Name).Msg("service created")
		}
	}

	clients := []models.Client{
		{Name: "João Silva", Email: "joao@email.com", Phone: "(11) 99999-0001"},
		{Name: "Maria Santos", Email: "maria@email.com", Phone: "(11) 99999-0002"},
		{Name: "Pedro Oliveira", Email: "pedro@email.com", Phone: "(11) 99999-0003"},
		{Name: "Ana Costa", Email: "ana@email.com", Phone: "(11) 99999-0004"},
		{Name: "Carlos Mendes", Email: "carlos@email.com", Phone: "(11) 99999-0005"},
	}

	for _, cl := range clients {
		res := db.Where("email = ?", cl.Email).FirstOrCreate(&cl)
		if res.Error != nil {
			logger.Error().Err(res.Error).Str("client", cl.Name).Msg("failed to seed client")
			continue
		}
		if res.RowsAffected > 0 {
			logger.Info().Str("client", cl.Name).Msg("client created")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to hash default password")
	}

	admin := models.User{
		Name:         "Admin Barbeiro",
		Email:        "admin@barbershop.com",
		PasswordHash: string(hash),
		Role:         "barber",
	}

	res := db.Where("email = ?", admin.Email).FirstOrCreate(&admin)
	if res.Error != nil {
		logger.Fatal().Err(res.Error).Msg("failed to seed user")
	}
	if res.RowsAffected > 0 {
		logger.Info().Str("email", admin.Email).Msg("initial user created")
	} else {
		logger.Info().Str("email", admin.Email).Msg("initial user already exists")
	}
}
