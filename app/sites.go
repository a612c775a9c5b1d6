package app

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RIDSdiseno/beck-crm/models"
)

// CreateFoamJoint appends an executed foam joint section.
func (s *State) CreateFoamJoint(section, floor, crew string, meters float64, date models.Date) (models.FoamJointRecord, error) {
	switch {
	case trimmed(section) == "":
		return models.FoamJointRecord{}, fmt.Errorf("%w: tramo", ErrMissingField)
	case trimmed(floor) == "":
		return models.FoamJointRecord{}, fmt.Errorf("%w: piso", ErrMissingField)
	case trimmed(crew) == "":
		return models.FoamJointRecord{}, fmt.Errorf("%w: cuadrilla", ErrMissingField)
	case meters <= 0:
		return models.FoamJointRecord{}, fmt.Errorf("app: metros must be positive")
	case date.IsZero():
		return models.FoamJointRecord{}, fmt.Errorf("%w: fecha", ErrMissingField)
	}

	max := 0
	for _, r := range s.FoamJoints {
		if r.ID > max {
			max = r.ID
		}
	}
	r := models.FoamJointRecord{
		ID:      max + 1,
		Section: trimmed(section),
		Floor:   trimmed(floor),
		Meters:  meters,
		Crew:    trimmed(crew),
		Date:    date,
	}
	s.FoamJoints = append(s.FoamJoints, r)
	if err := s.store.SaveFoamJoints(s.FoamJoints); err != nil {
		s.log.Warn("persisting foam joints failed", zap.Error(err))
		return r, err
	}
	return r, nil
}

// ResetFoamJoints discards the stored log and reloads demo data.
func (s *State) ResetFoamJoints() error {
	if err := s.store.ResetFoamJoints(); err != nil {
		return err
	}
	s.FoamJoints = s.store.LoadFoamJoints(nowFunc())
	return nil
}

// CreateProject registers a new site. Only administrators may do this;
// project names are unique.
func (s *State) CreateProject(actor models.Role, name, code string) (models.Project, error) {
	if actor != models.RoleAdministrator {
		return models.Project{}, ErrNotAuthorized
	}
	name = trimmed(name)
	if name == "" {
		return models.Project{}, fmt.Errorf("%w: nombre", ErrMissingField)
	}
	for _, p := range s.Projects {
		if strings.EqualFold(p.Name, name) {
			return models.Project{}, ErrDuplicateProject
		}
	}

	p := models.Project{
		ID:        "obra_" + uuid.NewString(),
		Name:      name,
		Code:      trimmed(code),
		CreatedAt: nowFunc(),
	}
	s.Projects = append(s.Projects, p)
	if err := s.store.SaveProjects(s.Projects); err != nil {
		s.log.Warn("persisting projects failed", zap.Error(err))
		return p, err
	}
	return p, nil
}

// ResetProjects discards the stored site list and reloads demo data.
func (s *State) ResetProjects() error {
	if err := s.store.ResetProjects(); err != nil {
		return err
	}
	s.Projects = s.store.LoadProjects()
	return nil
}

func trimmed(s string) string { return strings.TrimSpace(s) }
