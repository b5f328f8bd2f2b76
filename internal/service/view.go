package service

import (
	"context"

	"crm-builder-backend/internal/catalog"
	"crm-builder-backend/internal/database/models"
	apperrors "crm-builder-backend/internal/errors"
	"crm-builder-backend/internal/render"
	"crm-builder-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// UncategorizedLane is the kanban lane of records whose value matches no choice
const UncategorizedLane = "uncategorized"

// ViewService manages saved views and projects records through them
type ViewService struct {
	repo       repository.ViewRepositoryInterface
	moduleRepo repository.ModuleRepositoryInterface
	fieldRepo  repository.FieldRepositoryInterface
	recordRepo repository.RecordRepositoryInterface
	transactor repository.TransactorInterface
	validator  *validator.Validate
	pagination Pagination
}

// Ensure ViewService implements ViewServiceInterface
var _ ViewServiceInterface = (*ViewService)(nil)

// NewViewService creates a new ViewService
func NewViewService(repos *repository.Repositories, transactor repository.TransactorInterface, validator *validator.Validate, pagination Pagination) *ViewService {
	return &ViewService{
		repo:       repos.Views,
		moduleRepo: repos.Modules,
		fieldRepo:  repos.Fields,
		recordRepo: repos.Records,
		transactor: transactor,
		validator:  validator,
		pagination: pagination,
	}
}

// CreateViewRequest represents the request to save a view on a module
type CreateViewRequest struct {
	Name      string                   `json:"name" validate:"required,max=200"`
	Type      models.ViewType          `json:"type" validate:"required,oneof=table kanban"`
	Config    *models.ViewConfig       `json:"config,omitempty"`
	Filters   []map[string]interface{} `json:"filters,omitempty"`
	Sort      []models.SortSpec        `json:"sort,omitempty" validate:"omitempty,dive"`
	Columns   []string                 `json:"columns,omitempty"`
	Grouping  string                   `json:"grouping,omitempty" validate:"max=50"`
	IsDefault bool                     `json:"isDefault"`
	IsShared  *bool                    `json:"isShared,omitempty"`
	CreatedBy string                   `json:"createdBy,omitempty" validate:"max=100"`
}

// UpdateViewRequest represents a sparse patch of a view
type UpdateViewRequest struct {
	Name      *string                  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Type      *models.ViewType         `json:"type,omitempty" validate:"omitempty,oneof=table kanban"`
	Config    *models.ViewConfig       `json:"config,omitempty"`
	Filters   []map[string]interface{} `json:"filters,omitempty"`
	Sort      []models.SortSpec        `json:"sort,omitempty"`
	Columns   []string                 `json:"columns,omitempty"`
	Grouping  *string                  `json:"grouping,omitempty" validate:"omitempty,max=50"`
	IsDefault *bool                    `json:"isDefault,omitempty"`
	IsShared  *bool                    `json:"isShared,omitempty"`
}

// ViewRow is one record rendered for a table view
type ViewRow struct {
	RecordID string        `json:"recordId"`
	Cells    []render.Cell `json:"cells"`
}

// KanbanLane groups the records sharing one choice of the kanban field
type KanbanLane struct {
	Value string    `json:"value"`
	Label string    `json:"label"`
	Color string    `json:"color,omitempty"`
	Cards []ViewRow `json:"cards"`
}

// ViewDataResponse is one page of records projected through a view
type ViewDataResponse struct {
	View    ViewResponse `json:"view"`
	Columns []string     `json:"columns"`
	Total   int64        `json:"total"`
	Limit   int          `json:"limit"`
	Offset  int          `json:"offset"`
	Rows    []ViewRow    `json:"rows,omitempty"`
	Lanes   []KanbanLane `json:"lanes,omitempty"`
}

func checkSort(sort []models.SortSpec) error {
	for _, spec := range sort {
		if spec.Field == "" || !spec.Direction.IsValid() {
			return apperrors.NewValidationError("sort", "each entry needs a field and a direction of asc or desc")
		}
	}
	return nil
}

// ListByModule lists the views of a module, default view first
func (s *ViewService) ListByModule(moduleID string) ([]ViewResponse, error) {
	if _, err := s.moduleRepo.GetByID(moduleID); err != nil {
		return nil, lookupError(err, apperrors.ErrModuleNotFound, "get module")
	}
	views, err := s.repo.GetByModuleID(moduleID)
	if err != nil {
		return nil, apperrors.NewStorageError("list views", err)
	}
	return toViewResponses(views), nil
}

// GetView retrieves a view by ID
func (s *ViewService) GetView(id string) (*ViewResponse, error) {
	view, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrViewNotFound, "get view")
	}
	resp := toViewResponse(view)
	return &resp, nil
}

// CreateView saves a view. A new default view demotes the previous one.
func (s *ViewService) CreateView(ctx context.Context, moduleID string, req *CreateViewRequest) (*ViewResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := checkSort(req.Sort); err != nil {
		return nil, err
	}

	cfg := models.ViewConfig{}
	if req.Config != nil {
		cfg = *req.Config
	}
	if req.Type == models.ViewTypeKanban && cfg.KanbanField == "" {
		cfg.KanbanField = firstNonEmpty(req.Grouping, catalog.StatusFieldName)
	}
	sort := req.Sort
	if len(sort) == 0 {
		sort = []models.SortSpec{{Field: models.DefaultSortField, Direction: models.SortDesc}}
	}
	filters := req.Filters
	if filters == nil {
		filters = []map[string]interface{}{}
	}
	columns := req.Columns
	if columns == nil {
		columns = []string{}
	}
	isShared := true
	if req.IsShared != nil {
		isShared = *req.IsShared
	}

	view := &models.View{
		ModuleID:  moduleID,
		Name:      req.Name,
		Type:      req.Type,
		Config:    datatypes.NewJSONType(cfg),
		Filters:   datatypes.NewJSONType(filters),
		Sort:      datatypes.NewJSONType(sort),
		Columns:   datatypes.NewJSONType(columns),
		Grouping:  req.Grouping,
		IsDefault: req.IsDefault,
		IsShared:  isShared,
		CreatedBy: firstNonEmpty(req.CreatedBy, actorFromContext(ctx)),
	}

	err := s.transactor.WithinTransaction(func(repos *repository.Repositories) error {
		if _, err := repos.Modules.GetByID(moduleID); err != nil {
			return lookupError(err, apperrors.ErrModuleNotFound, "get module")
		}
		if view.IsDefault {
			if _, err := repos.Views.ClearDefault(moduleID, ""); err != nil {
				return apperrors.NewStorageError("demote default view", err)
			}
		}
		if err := repos.Views.Create(view); err != nil {
			return apperrors.NewStorageError("create view", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toViewResponse(view)
	return &resp, nil
}

// UpdateView applies a sparse patch. Promoting a view to default demotes the
// previous default of the module in the same transaction.
func (s *ViewService) UpdateView(id string, req *UpdateViewRequest) (*ViewResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if err := checkSort(req.Sort); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Config != nil {
		updates["config"] = datatypes.NewJSONType(*req.Config)
	}
	if req.Filters != nil {
		updates["filters"] = datatypes.NewJSONType(req.Filters)
	}
	if req.Sort != nil {
		updates["sort"] = datatypes.NewJSONType(req.Sort)
	}
	if req.Columns != nil {
		updates["columns"] = datatypes.NewJSONType(req.Columns)
	}
	if req.Grouping != nil {
		updates["grouping"] = *req.Grouping
	}
	if req.IsDefault != nil {
		updates["is_default"] = *req.IsDefault
	}
	if req.IsShared != nil {
		updates["is_shared"] = *req.IsShared
	}

	var updated *models.View
	err := s.transactor.WithinTransaction(func(repos *repository.Repositories) error {
		view, err := repos.Views.GetByID(id)
		if err != nil {
			return lookupError(err, apperrors.ErrViewNotFound, "get view")
		}
		if req.IsDefault != nil && *req.IsDefault {
			if _, err := repos.Views.ClearDefault(view.ModuleID, id); err != nil {
				return apperrors.NewStorageError("demote default view", err)
			}
		}
		ok, err := repos.Views.Update(id, updates)
		if err != nil {
			return apperrors.NewStorageError("update view", err)
		}
		if !ok {
			return apperrors.ErrViewNotFound
		}
		updated, err = repos.Views.GetByID(id)
		if err != nil {
			return lookupError(err, apperrors.ErrViewNotFound, "get view")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toViewResponse(updated)
	return &resp, nil
}

// DeleteView removes a view
func (s *ViewService) DeleteView(id string) error {
	ok, err := s.repo.Delete(id)
	if err != nil {
		return apperrors.NewStorageError("delete view", err)
	}
	if !ok {
		return apperrors.ErrViewNotFound
	}
	return nil
}

// GetViewData renders one page of module records through a view. Records are
// paged newest first.
func (s *ViewService) GetViewData(id string, limit, offset int) (*ViewDataResponse, error) {
	view, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrViewNotFound, "get view")
	}
	if limit == 0 {
		limit = view.Config.Data().PageSize
	}
	limit, offset, err = s.pagination.clamp(limit, offset)
	if err != nil {
		return nil, err
	}

	fields, err := s.fieldRepo.GetByModuleID(view.ModuleID)
	if err != nil {
		return nil, apperrors.NewStorageError("list fields", err)
	}
	records, err := s.recordRepo.GetByModuleID(view.ModuleID, limit, offset)
	if err != nil {
		return nil, apperrors.NewStorageError("list records", err)
	}
	total, err := s.recordRepo.CountByModuleID(view.ModuleID)
	if err != nil {
		return nil, apperrors.NewStorageError("count records", err)
	}

	columns := viewColumns(view, fields)
	resp := &ViewDataResponse{
		View:    toViewResponse(view),
		Columns: columnNames(columns),
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}
	if view.Type == models.ViewTypeKanban {
		resp.Lanes = kanbanLanes(view, fields, columns, records)
	} else {
		resp.Rows = make([]ViewRow, 0, len(records))
		for _, r := range records {
			resp.Rows = append(resp.Rows, ViewRow{RecordID: r.ID, Cells: render.Record(columns, r.Data)})
		}
	}
	return resp, nil
}

// viewColumns resolves the column list of a view to field definitions. Views
// without columns show every list-visible field; unknown names render as text.
func viewColumns(view *models.View, fields []models.Field) []models.Field {
	byName := make(map[string]models.Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	names := view.Columns.Data()
	if len(names) == 0 {
		var out []models.Field
		for _, f := range fields {
			if f.ShowInList {
				out = append(out, f)
			}
		}
		return out
	}

	out := make([]models.Field, 0, len(names))
	for _, name := range names {
		f, ok := byName[name]
		if !ok {
			f = models.Field{Name: name, Label: name, Type: models.FieldTypeText}
		}
		out = append(out, f)
	}
	return out
}

func columnNames(fields []models.Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// kanbanLanes builds one lane per choice of the kanban field, in choice order,
// followed by the uncategorized lane. A missing or non-select kanban field
// puts every record in the uncategorized lane.
func kanbanLanes(view *models.View, fields []models.Field, columns []models.Field, records []models.Record) []KanbanLane {
	key := firstNonEmpty(view.Config.Data().KanbanField, view.Grouping, catalog.StatusFieldName)

	var choices []models.Choice
	for _, f := range fields {
		if f.Name == key && f.Type == models.FieldTypeSelect {
			choices = f.Options.Data().Choices
			break
		}
	}

	lanes := make([]KanbanLane, 0, len(choices)+1)
	index := make(map[string]int, len(choices))
	for _, c := range choices {
		index[c.Value] = len(lanes)
		lanes = append(lanes, KanbanLane{Value: c.Value, Label: c.Label, Color: c.Color, Cards: []ViewRow{}})
	}
	uncategorized := KanbanLane{Value: UncategorizedLane, Label: "Uncategorized", Cards: []ViewRow{}}

	for _, r := range records {
		card := ViewRow{RecordID: r.ID, Cells: render.Record(columns, r.Data)}
		if i, ok := index[render.Stringify(r.Data[key])]; ok {
			lanes[i].Cards = append(lanes[i].Cards, card)
			continue
		}
		uncategorized.Cards = append(uncategorized.Cards, card)
	}
	return append(lanes, uncategorized)
}
