package service

import (
	"context"
	"maps"
	"slices"
	"strings"
	"time"

	"crm-builder-backend/internal/database/models"
	apperrors "crm-builder-backend/internal/errors"
	"crm-builder-backend/internal/logger"
	"crm-builder-backend/internal/metrics"
	"crm-builder-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// RecordOptions tunes listing limits and the write-time validation gate
type RecordOptions struct {
	Pagination        Pagination
	SearchLimit       int
	EnforceValidation bool
}

// RecordService stores schema-less records and their activity log
type RecordService struct {
	repo         repository.RecordRepositoryInterface
	appRepo      repository.CrmAppRepositoryInterface
	moduleRepo   repository.ModuleRepositoryInterface
	fieldRepo    repository.FieldRepositoryInterface
	activityRepo repository.ActivityRepositoryInterface
	transactor   repository.TransactorInterface
	validator    *validator.Validate
	opts         RecordOptions
}

// Ensure RecordService implements RecordServiceInterface
var _ RecordServiceInterface = (*RecordService)(nil)

// NewRecordService creates a new RecordService
func NewRecordService(repos *repository.Repositories, transactor repository.TransactorInterface, validator *validator.Validate, opts RecordOptions) *RecordService {
	if opts.Pagination.DefaultLimit == 0 {
		opts.Pagination.DefaultLimit = 100
	}
	if opts.SearchLimit == 0 {
		opts.SearchLimit = 50
	}
	return &RecordService{
		repo:         repos.Records,
		appRepo:      repos.Apps,
		moduleRepo:   repos.Modules,
		fieldRepo:    repos.Fields,
		activityRepo: repos.Activities,
		transactor:   transactor,
		validator:    validator,
		opts:         opts,
	}
}

// CreateRecordRequest represents the request to create a record
type CreateRecordRequest struct {
	Data      map[string]interface{} `json:"data"`
	CreatedBy string                 `json:"createdBy,omitempty" validate:"max=100"`
}

// UpdateRecordRequest carries the partial data merged into a record
type UpdateRecordRequest struct {
	Data      map[string]interface{} `json:"data"`
	UpdatedBy string                 `json:"updatedBy,omitempty" validate:"max=100"`
}

// CreateActivityRequest represents a manually logged activity
type CreateActivityRequest struct {
	Type      models.ActivityType    `json:"type" validate:"required"`
	Content   string                 `json:"content" validate:"max=10000"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedBy string                 `json:"createdBy,omitempty" validate:"max=100"`
}

// RecordListResponse is one page of module records
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int64            `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// gate runs the validation pass when enforcement is enabled
func (s *RecordService) gate(moduleID string, data map[string]interface{}) error {
	if !s.opts.EnforceValidation {
		return nil
	}
	fields, err := s.fieldRepo.GetByModuleID(moduleID)
	if err != nil {
		return apperrors.NewStorageError("list fields", err)
	}
	if errs := ValidateRecord(fields, data); len(errs) > 0 {
		return &RecordValidationError{Errors: errs}
	}
	return nil
}

// CreateRecord stores data verbatim under a module and logs a created
// activity. Field rules are only checked when validation is enforced.
func (s *RecordService) CreateRecord(ctx context.Context, moduleID string, req *CreateRecordRequest) (*RecordResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if req.Data == nil {
		return nil, apperrors.ErrRecordDataRequired
	}

	module, err := s.moduleRepo.GetByID(moduleID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrModuleNotFound, "get module")
	}
	if err := s.gate(moduleID, req.Data); err != nil {
		return nil, err
	}

	defer metrics.TrackDBOperation("create_record")(time.Now())

	actor := firstNonEmpty(req.CreatedBy, actorFromContext(ctx))
	record := &models.Record{
		AppID:     module.AppID,
		ModuleID:  moduleID,
		Data:      models.JSONDocument(req.Data),
		CreatedBy: actor,
		UpdatedBy: actor,
	}
	err = s.transactor.WithinTransaction(func(repos *repository.Repositories) error {
		if err := repos.Records.Create(record); err != nil {
			return apperrors.NewStorageError("create record", err)
		}
		return logChange(repos, record.ID, models.ActivityTypeCreated, "Record created", req.Data, actor)
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordRecordOperation("create")
	resp := toRecordResponse(record)
	return &resp, nil
}

// GetRecord retrieves a record by ID
func (s *RecordService) GetRecord(id string) (*RecordResponse, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrRecordNotFound, "get record")
	}
	resp := toRecordResponse(record)
	return &resp, nil
}

// ListByModule returns one page of a module's records, newest first, with the module total
func (s *RecordService) ListByModule(moduleID string, limit, offset int) (*RecordListResponse, error) {
	limit, offset, err := s.opts.Pagination.clamp(limit, offset)
	if err != nil {
		return nil, err
	}
	if _, err := s.moduleRepo.GetByID(moduleID); err != nil {
		return nil, lookupError(err, apperrors.ErrModuleNotFound, "get module")
	}

	defer metrics.TrackDBOperation("list_records")(time.Now())

	records, err := s.repo.GetByModuleID(moduleID, limit, offset)
	if err != nil {
		return nil, apperrors.NewStorageError("list records", err)
	}
	total, err := s.repo.CountByModuleID(moduleID)
	if err != nil {
		return nil, apperrors.NewStorageError("count records", err)
	}
	return &RecordListResponse{
		Records: toRecordResponses(records),
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

// ListByApp returns the most recent records across every module of an app
func (s *RecordService) ListByApp(appID string, limit int) ([]RecordResponse, error) {
	limit, _, err := s.opts.Pagination.clamp(limit, 0)
	if err != nil {
		return nil, err
	}
	if _, err := s.appRepo.GetByID(appID); err != nil {
		return nil, lookupError(err, apperrors.ErrCrmAppNotFound, "get app")
	}
	records, err := s.repo.GetByAppID(appID, limit)
	if err != nil {
		return nil, apperrors.NewStorageError("list app records", err)
	}
	return toRecordResponses(records), nil
}

// Search finds records whose data contains term in any value
func (s *RecordService) Search(moduleID, term string, limit int) ([]RecordResponse, error) {
	if strings.TrimSpace(term) == "" {
		return nil, apperrors.ErrEmptySearchTerm
	}
	if limit < 0 {
		return nil, apperrors.ErrInvalidPagination
	}
	if limit == 0 || limit > s.opts.SearchLimit {
		limit = s.opts.SearchLimit
	}
	if _, err := s.moduleRepo.GetByID(moduleID); err != nil {
		return nil, lookupError(err, apperrors.ErrModuleNotFound, "get module")
	}

	defer metrics.TrackDBOperation("search_records")(time.Now())

	records, err := s.repo.Search(moduleID, term, limit)
	if err != nil {
		return nil, apperrors.NewStorageError("search records", err)
	}
	metrics.RecordRecordOperation("search")
	return toRecordResponses(records), nil
}

// UpdateRecord shallow-merges req.Data into the stored data: keys absent
// from the patch keep their values, keys present are replaced.
//
// The merge is read-then-write without compare-and-swap. Two editors
// updating the same record concurrently can lose one of the patches (last
// writer wins on the whole data column).
func (s *RecordService) UpdateRecord(ctx context.Context, id string, req *UpdateRecordRequest) (*RecordResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if req.Data == nil {
		return nil, apperrors.ErrRecordDataRequired
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrRecordNotFound, "get record")
	}

	merged := MergeData(existing.Data, req.Data)
	if err := s.gate(existing.ModuleID, merged); err != nil {
		return nil, err
	}

	defer metrics.TrackDBOperation("update_record")(time.Now())

	actor := firstNonEmpty(req.UpdatedBy, actorFromContext(ctx))
	var updated *models.Record
	err = s.transactor.WithinTransaction(func(repos *repository.Repositories) error {
		ok, err := repos.Records.Update(id, merged, actor)
		if err != nil {
			return apperrors.NewStorageError("update record", err)
		}
		if !ok {
			return apperrors.ErrRecordNotFound
		}
		if err := logChange(repos, id, models.ActivityTypeUpdated, "Record updated", req.Data, actor); err != nil {
			return err
		}
		updated, err = repos.Records.GetByID(id)
		if err != nil {
			return lookupError(err, apperrors.ErrRecordNotFound, "get record")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordRecordOperation("update")
	resp := toRecordResponse(updated)
	return &resp, nil
}

// MergeData returns a copy of current with every key of patch applied on top
func MergeData(current, patch map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(current)+len(patch))
	maps.Copy(merged, current)
	maps.Copy(merged, patch)
	return merged
}

// DeleteRecord removes a record and its activity log
func (s *RecordService) DeleteRecord(id string) error {
	err := s.transactor.WithinTransaction(func(repos *repository.Repositories) error {
		if _, err := repos.Activities.DeleteByRecordID(id); err != nil {
			return apperrors.NewStorageError("delete activities", err)
		}
		ok, err := repos.Records.Delete(id)
		if err != nil {
			return apperrors.NewStorageError("delete record", err)
		}
		if !ok {
			return apperrors.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	metrics.RecordRecordOperation("delete")
	return nil
}

// ValidateData runs the validation pass against a module's fields without
// writing anything
func (s *RecordService) ValidateData(moduleID string, data map[string]interface{}) (*ValidationReport, error) {
	if data == nil {
		return nil, apperrors.ErrRecordDataRequired
	}
	if _, err := s.moduleRepo.GetByID(moduleID); err != nil {
		return nil, lookupError(err, apperrors.ErrModuleNotFound, "get module")
	}
	fields, err := s.fieldRepo.GetByModuleID(moduleID)
	if err != nil {
		return nil, apperrors.NewStorageError("list fields", err)
	}
	return buildReport(fields, data), nil
}

// ListActivities returns the activity log of a record, newest first
func (s *RecordService) ListActivities(recordID string, limit int) ([]ActivityResponse, error) {
	limit, _, err := s.opts.Pagination.clamp(limit, 0)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(recordID); err != nil {
		return nil, lookupError(err, apperrors.ErrRecordNotFound, "get record")
	}
	activities, err := s.activityRepo.GetByRecordID(recordID, limit)
	if err != nil {
		return nil, apperrors.NewStorageError("list activities", err)
	}
	out := make([]ActivityResponse, len(activities))
	for i := range activities {
		out[i] = toActivityResponse(&activities[i])
	}
	return out, nil
}

// AddActivity appends a manual note, call, email or meeting to a record
func (s *RecordService) AddActivity(ctx context.Context, recordID string, req *CreateActivityRequest) (*ActivityResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if !req.Type.IsManual() {
		return nil, apperrors.NewValidationError("type", "must be one of note, call, email, meeting")
	}
	if _, err := s.repo.GetByID(recordID); err != nil {
		return nil, lookupError(err, apperrors.ErrRecordNotFound, "get record")
	}

	activity := &models.Activity{
		RecordID:  recordID,
		Type:      req.Type,
		Content:   req.Content,
		Metadata:  datatypes.JSONMap(req.Metadata),
		CreatedBy: firstNonEmpty(req.CreatedBy, actorFromContext(ctx)),
	}
	if err := s.activityRepo.Create(activity); err != nil {
		return nil, apperrors.NewStorageError("create activity", err)
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"record_id": recordID,
		"type":      req.Type,
	}).Debug("Activity logged")

	resp := toActivityResponse(activity)
	return &resp, nil
}

// DeleteActivity removes a single activity entry
func (s *RecordService) DeleteActivity(id string) error {
	ok, err := s.activityRepo.Delete(id)
	if err != nil {
		return apperrors.NewStorageError("delete activity", err)
	}
	if !ok {
		return apperrors.ErrActivityNotFound
	}
	return nil
}

// logChange appends a created or updated activity listing the touched keys
func logChange(repos *repository.Repositories, recordID string, t models.ActivityType, content string, data map[string]interface{}, actor string) error {
	keys := slices.Sorted(maps.Keys(data))
	activity := &models.Activity{
		RecordID:  recordID,
		Type:      t,
		Content:   content,
		Metadata:  datatypes.JSONMap{"fields": keys},
		CreatedBy: actor,
	}
	if err := repos.Activities.Create(activity); err != nil {
		return apperrors.NewStorageError("log activity", err)
	}
	return nil
}
