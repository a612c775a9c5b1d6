package storage

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/RIDSdiseno/beck-crm/models"
)

// DemoPassword is the password every demo account accepts.
const DemoPassword = "beck-demo"

// demoHash is computed once; GenerateFromPassword cannot fail for a valid
// cost.
var demoHash = func() string {
	h, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}()

// DemoUsers is the hardcoded user list the loader falls back to.
func DemoUsers() []models.User {
	return []models.User{
		{
			ID:           "u_admin_demo",
			Name:         "Admin Demo",
			Email:        "admin@beck.cl",
			Role:         models.RoleAdministrator,
			Active:       true,
			CreatedAt:    time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
			PasswordHash: demoHash,
		},
		{
			ID:           "u_terreno_demo",
			Name:         "Terreno Demo",
			Email:        "terreno@beck.cl",
			Role:         models.RoleFieldWorker,
			Active:       true,
			CreatedAt:    time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC),
			PasswordHash: demoHash,
		},
		{
			ID:           "u_visualizador_demo",
			Name:         "Visualizador Demo",
			Email:        "visualizador@beck.cl",
			Role:         models.RoleViewer,
			Active:       true,
			CreatedAt:    time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC),
			PasswordHash: demoHash,
		},
	}
}

// DemoSealRecords is the demo registry, dated relative to now so the
// dashboard presets always have something to show.
func DemoSealRecords(now time.Time) []models.SealRecord {
	today := models.DateOf(now)
	twoDaysAgo := today.AddDays(-2)
	yesterday := today.AddDays(-1)

	return []models.SealRecord{
		{
			ID:                1,
			BeckItem:          "BECK-001",
			SacyrItem:         "SACYR-A12",
			ExecutionDate:     twoDaysAgo,
			Weekday:           twoDaysAgo.Weekday(),
			Floor:             "Piso 1",
			AxisAlpha:         "A",
			AxisNumeric:       "10",
			InstallerName:     "Juan Pérez",
			Room:              "Sala bombas",
			SealNumber:        "S-0001",
			SealCount:         6,
			GapCM:             4,
			GapFactor:         1.4,
			ModularCeiling:    models.CeilingAmerican,
			WeightedSealCount: 6 * 1.4,
			Notes:             "Sector crítico por recorrido de evacuación.",
		},
		{
			ID:                2,
			BeckItem:          "BECK-002",
			SacyrItem:         "SACYR-A13",
			ExecutionDate:     yesterday,
			Weekday:           yesterday.Weekday(),
			Floor:             "Piso 2",
			AxisAlpha:         "B",
			AxisNumeric:       "12",
			InstallerName:     "Carla Gómez",
			Room:              "Pasillo principal",
			SealNumber:        "S-0010",
			SealCount:         4,
			GapCM:             2,
			GapFactor:         1.2,
			ModularCeiling:    models.CeilingNormal,
			WeightedSealCount: 4 * 1.2,
			Notes:             "Sellos en bandejas eléctricas.",
		},
		{
			ID:                3,
			BeckItem:          "BECK-003",
			SacyrItem:         "SACYR-B05",
			ExecutionDate:     today,
			Weekday:           today.Weekday(),
			Floor:             "Subterráneo -1",
			AxisAlpha:         "C",
			AxisNumeric:       "5",
			InstallerName:     "Equipo estructuras",
			Room:              "Sala máquinas",
			SealNumber:        "S-0200",
			SealCount:         8,
			GapCM:             7,
			GapFactor:         1.8,
			ModularCeiling:    models.CeilingHardAccess,
			WeightedSealCount: 8 * 1.8,
			Notes:             "Holguras mayores, revisar en próxima inspección.",
		},
	}
}

// DemoQuotations is the demo proposal book.
func DemoQuotations(now time.Time) []models.Quotation {
	today := models.DateOf(now)
	return []models.Quotation{
		{
			ID:          1,
			Number:      20,
			Code:        "BECK-COT-2025-020",
			Client:      "3DENTAL SPA",
			Project:     "Sellos cortafuego clínica dental",
			Origin:      "BECK",
			Type:        models.QuotationTypeClient,
			IssueDate:   today.AddDays(-12),
			ValidUntil:  today.AddDays(18),
			Status:      models.QuotationDraft,
			Amount:      65405,
			Currency:    models.CurrencyCLP,
			Responsible: "Equipo Beck",
			Notes:       "Incluye salas de procedimiento y subterráneo -1.",
		},
		{
			ID:          2,
			Number:      21,
			Code:        "BECK-COT-2025-021",
			Client:      "Constructora Andes",
			Project:     "Retape sellos torre B",
			Origin:      "Directo",
			Type:        models.QuotationTypeService,
			IssueDate:   today.AddDays(-6),
			ValidUntil:  today.AddDays(5),
			Status:      models.QuotationSent,
			Amount:      184000,
			Currency:    models.CurrencyCLP,
			Responsible: "Equipo Beck",
		},
		{
			ID:          3,
			Number:      22,
			Code:        "BECK-COT-2025-022",
			Client:      "Hospital Regional",
			Project:     "Sellado pasadas eléctricas pabellón",
			Origin:      "Licitación",
			Type:        models.QuotationTypeClient,
			IssueDate:   today.AddDays(-2),
			ValidUntil:  today.AddDays(28),
			Status:      models.QuotationAccepted,
			Amount:      9200,
			Currency:    models.CurrencyUSD,
			Responsible: "Equipo Beck",
		},
	}
}

// DemoFoamJoints is the demo linear foam joint log.
func DemoFoamJoints(now time.Time) []models.FoamJointRecord {
	today := models.DateOf(now)
	return []models.FoamJointRecord{
		{ID: 1, Section: "JL-ESP-001", Floor: "Piso 1", Meters: 12.5, Crew: "Equipo espuma 1", Date: today.AddDays(-3)},
		{ID: 2, Section: "JL-ESP-010", Floor: "Piso 2", Meters: 8.3, Crew: "Equipo espuma 2", Date: today.AddDays(-1)},
		{ID: 3, Section: "JL-ESP-020", Floor: "Subterráneo -1", Meters: 15.1, Crew: "Equipo espuma 1", Date: today},
	}
}

// DemoProjects is the demo site list.
func DemoProjects() []models.Project {
	return []models.Project{
		{
			ID:        "obra_demo_1",
			Name:      "Hospital Sótero del Río",
			Code:      "OBRA-HSR",
			CreatedAt: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:        "obra_demo_2",
			Name:      "Data Center Quilicura",
			Code:      "OBRA-DCQ",
			CreatedAt: time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC),
		},
	}
}
