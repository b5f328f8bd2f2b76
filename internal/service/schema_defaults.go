package service

import (
	"crm-builder-backend/internal/catalog"
	"crm-builder-backend/internal/database/models"

	"gorm.io/datatypes"
)

// defaultTableView builds the shared default table view of a module listing
// every field flagged showInList, newest records first
func defaultTableView(moduleID, displayName string, fields []models.Field) *models.View {
	columns := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.ShowInList {
			columns = append(columns, f.Name)
		}
	}
	return &models.View{
		ModuleID:  moduleID,
		Name:      "All " + displayName,
		Type:      models.ViewTypeTable,
		Config:    datatypes.NewJSONType(models.ViewConfig{}),
		Filters:   datatypes.NewJSONType([]map[string]interface{}{}),
		Sort:      datatypes.NewJSONType([]models.SortSpec{{Field: models.DefaultSortField, Direction: models.SortDesc}}),
		Columns:   datatypes.NewJSONType(columns),
		IsDefault: true,
		IsShared:  true,
	}
}

// kanbanView builds the board view grouped by the status field
func kanbanView(moduleID, displayName string) *models.View {
	return &models.View{
		ModuleID:  moduleID,
		Name:      displayName + " Board",
		Type:      models.ViewTypeKanban,
		Config:    datatypes.NewJSONType(models.ViewConfig{KanbanField: catalog.StatusFieldName}),
		Filters:   datatypes.NewJSONType([]map[string]interface{}{}),
		Sort:      datatypes.NewJSONType([]models.SortSpec{{Field: models.DefaultSortField, Direction: models.SortDesc}}),
		Columns:   datatypes.NewJSONType([]string{}),
		Grouping:  catalog.StatusFieldName,
		IsDefault: false,
		IsShared:  true,
	}
}

// fieldFromTemplate materializes a catalog field template
func fieldFromTemplate(moduleID string, t catalog.FieldTemplate, sortOrder int) *models.Field {
	var opts models.FieldOptions
	if t.Options != nil {
		opts = *t.Options
	}
	return &models.Field{
		ModuleID:   moduleID,
		Name:       t.Name,
		Label:      firstNonEmpty(t.Label, t.Name),
		Type:       t.Type,
		Required:   t.Required,
		Options:    datatypes.NewJSONType(opts),
		SortOrder:  sortOrder,
		ShowInList: t.ListVisible(),
		ShowInForm: true,
	}
}
