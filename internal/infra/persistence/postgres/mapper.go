package postgres

import (
	"habit/internal/domain/entity"
	"habit/internal/infra/persistence/model"
)

func toMemberDomain(m *model.MemberModel) *entity.Member {
	if m == nil {
		return nil
	}

	member := &entity.Member{
		ID:        m.ID,
		Username:  m.Username,
		Password:  m.Password,
		FullName:  m.FullName,
		Gender:    entity.Gender(m.Gender),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.DateOfBirth != nil {
		member.DateOfBirth = *m.DateOfBirth
	}
	if m.RefreshToken != nil {
		member.RefreshToken = *m.RefreshToken
	}

	return member
}

func fromMemberDomain(member *entity.Member) *model.MemberModel {
	m := &model.MemberModel{
		ID:        member.ID,
		Username:  member.Username,
		Password:  member.Password,
		FullName:  member.FullName,
		Gender:    string(member.Gender),
		CreatedAt: member.CreatedAt,
		UpdatedAt: member.UpdatedAt,
	}
	if member.DateOfBirth != "" {
		m.DateOfBirth = &member.DateOfBirth
	}
	if member.RefreshToken != "" {
		m.RefreshToken = &member.RefreshToken
	}

	return m
}

func toUnitDomain(m *model.UnitModel) *entity.Unit {
	if m == nil {
		return nil
	}

	return &entity.Unit{ID: m.ID, Name: m.Name}
}

func toUnitsDomain(models []*model.UnitModel) []*entity.Unit {
	units := make([]*entity.Unit, 0, len(models))
	for _, m := range models {
		units = append(units, toUnitDomain(m))
	}

	return units
}

func unitModelsFromIDs(ids []int64) []*model.UnitModel {
	units := make([]*model.UnitModel, 0, len(ids))
	for _, id := range ids {
		units = append(units, &model.UnitModel{ID: id})
	}

	return units
}

// toScheduleDomain maps a schedule together with whatever relations were preloaded.
func toScheduleDomain(m *model.ScheduleModel) *entity.Schedule {
	if m == nil {
		return nil
	}

	schedule := &entity.Schedule{
		ID:          m.ID,
		Name:        m.Name,
		Depth:       m.Depth,
		ParentID:    m.ParentID,
		Parent:      toScheduleDomain(m.Parent),
		Units:       toUnitsDomain(m.Units),
		CreatedByID: m.CreatedByID,
		CreatedBy:   toMemberDomain(m.CreatedBy),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	schedule.Children = make([]*entity.Schedule, 0, len(m.Children))
	for _, child := range m.Children {
		schedule.Children = append(schedule.Children, toScheduleDomain(child))
	}

	schedule.Logs = make([]*entity.Log, 0, len(m.Logs))
	for _, l := range m.Logs {
		schedule.Logs = append(schedule.Logs, toLogDomain(l))
	}

	return schedule
}

func fromScheduleDomain(schedule *entity.Schedule) *model.ScheduleModel {
	return &model.ScheduleModel{
		ID:          schedule.ID,
		Name:        schedule.Name,
		Depth:       schedule.Depth,
		ParentID:    schedule.ParentID,
		CreatedByID: schedule.CreatedByID,
		CreatedAt:   schedule.CreatedAt,
		UpdatedAt:   schedule.UpdatedAt,
	}
}

func toLogDomain(m *model.LogModel) *entity.Log {
	if m == nil {
		return nil
	}

	return &entity.Log{
		ID:          m.ID,
		Value:       m.Value,
		UnitID:      m.UnitID,
		Unit:        toUnitDomain(m.Unit),
		ScheduleID:  m.ScheduleID,
		Schedule:    toScheduleDomain(m.Schedule),
		CreatedByID: m.CreatedByID,
		CreatedBy:   toMemberDomain(m.CreatedBy),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromLogDomain(log *entity.Log) *model.LogModel {
	return &model.LogModel{
		ID:          log.ID,
		Value:       log.Value,
		UnitID:      log.UnitID,
		ScheduleID:  log.ScheduleID,
		CreatedByID: log.CreatedByID,
		CreatedAt:   log.CreatedAt,
		UpdatedAt:   log.UpdatedAt,
	}
}
