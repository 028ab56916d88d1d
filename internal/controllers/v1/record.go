package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/scastellanosl/coinary-backend/internal/events"
	"github.com/scastellanosl/coinary-backend/internal/httputil"
	"github.com/scastellanosl/coinary-backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterRecordRoutes registers the routes for records with
// the RouterGroup that is passed.
func RegisterRecordRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecordList)
		r.GET("", GetRecords)
		r.POST("", CreateRecords)
	}

	// Record with ID
	{
		r.OPTIONS("/:id", OptionsRecordDetail)
		r.GET("/:id", GetRecord)
		r.PATCH("/:id", UpdateRecord)
		r.DELETE("/:id", DeleteRecord)
	}
}

// OptionsRecordList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Records
//	@Success		204
//	@Router			/v1/records [options]
func OptionsRecordList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsRecordDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Records
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/records/{id} [options]
func OptionsRecordDetail(c *gin.Context) {
	resourceOptionsDetail[models.Record](c)
}

// CreateRecords creates new records
//
//	@Summary		Create records
//	@Description	Creates new records
//	@Tags			Records
//	@Produce		json
//	@Success		201	{object}	RecordCreateResponse
//	@Failure		400	{object}	RecordCreateResponse
//	@Failure		404	{object}	RecordCreateResponse
//	@Failure		500	{object}	RecordCreateResponse
//	@Param			records	body		[]RecordEditable	true	"Records"
//	@Router			/v1/records [post]
func CreateRecords(c *gin.Context) {
	var editables []RecordEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecordCreateResponse{
			Error: &s,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := RecordCreateResponse{}

	for _, editable := range editables {
		record := editable.model()

		err = models.DB.Create(&record).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newRecord(record)
		r.Data = append(r.Data, RecordResponse{Data: &data})

		if events.Default != nil {
			err = events.Default.PublishRecord(c.Request.Context(), events.ActionCreated, record)
			if err != nil {
				log.Error().Str("event", "publish failed").Str("record", record.ID.String()).Err(err).Msg("events")
			}
		}
	}

	c.JSON(status, r)
}

// GetRecords returns records filtered by the query parameters
//
//	@Summary		Get records
//	@Description	Returns a list of records
//	@Tags			Records
//	@Produce		json
//	@Success		200	{object}	RecordListResponse
//	@Failure		400	{object}	RecordListResponse
//	@Failure		500	{object}	RecordListResponse
//	@Router			/v1/records [get]
//	@Param			kind				query	string	false	"Filter by kind"
//	@Param			ledger				query	string	false	"Filter by ledger ID"
//	@Param			category			query	string	false	"Filter by category"
//	@Param			note				query	string	false	"Filter by note"
//	@Param			date				query	string	false	"Date of the record. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
//	@Param			fromDate			query	string	false	"Records at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
//	@Param			untilDate			query	string	false	"Records before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
//	@Param			amount				query	string	false	"Filter by amount"
//	@Param			amountLessOrEqual	query	string	false	"Amount less than or equal to this"
//	@Param			amountMoreOrEqual	query	string	false	"Amount more than or equal to this"
//	@Param			offset				query	uint	false	"The offset of the first Record returned. Defaults to 0."
//	@Param			limit				query	int		false	"Maximum number of Records to return. Defaults to 50."
func GetRecords(c *gin.Context) {
	var filter RecordQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, RecordListResponse{
			Error: &s,
		})
		return
	}

	if filter.Kind != "" && filter.Kind != models.KindIncome && filter.Kind != models.KindExpense {
		s := errKindInvalid.Error()
		c.JSON(http.StatusBadRequest, RecordListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("datetime(date) DESC, datetime(created_at) DESC").
		Where(filter.model(), queryFields...)

	// Filter for the exact day the timestamp is in
	if !filter.Date.IsZero() {
		date := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, time.UTC)
		q = q.Where("records.date >= date(?)", date).Where("records.date < date(?)", date.AddDate(0, 0, 1))
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("records.date >= date(?)", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("records.date < date(?)", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	if !filter.AmountLessOrEqual.IsZero() {
		q = q.Where("records.amount <= ?", filter.AmountLessOrEqual)
	}

	if !filter.AmountMoreOrEqual.IsZero() {
		q = q.Where("records.amount >= ?", filter.AmountMoreOrEqual)
	}

	// Filter for notes containing the string
	if filter.Note != "" {
		q = q.Where("note LIKE ?", fmt.Sprintf("%%%s%%", filter.Note))
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("note = ''")
	}

	// Set the offset. Does not need checking since the default offset is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 records and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var records []models.Record
	err := q.Find(&records).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecordListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecordListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Record, 0, len(records))
	for _, record := range records {
		data = append(data, newRecord(record))
	}

	c.JSON(http.StatusOK, RecordListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// GetRecord returns a specific record
//
//	@Summary		Get record
//	@Description	Returns a specific record
//	@Tags			Records
//	@Produce		json
//	@Success		200	{object}	RecordResponse
//	@Failure		400	{object}	RecordResponse
//	@Failure		404	{object}	RecordResponse
//	@Failure		500	{object}	RecordResponse
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/records/{id} [get]
func GetRecord(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), RecordResponse{
			Error: &s,
		})
		return
	}

	var record models.Record
	err := models.DB.First(&record, &models.Record{
		DefaultModel: models.DefaultModel{
			ID: uri.ID.UUID,
		},
	}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecordResponse{
			Error: &s,
		})
		return
	}

	data := newRecord(record)
	c.JSON(http.StatusOK, RecordResponse{Data: &data})
}

// UpdateRecord updates a record
//
//	@Summary		Update record
//	@Description	Updates an existing record. Only values to be updated need to be specified.
//	@Tags			Records
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	RecordResponse
//	@Failure		400	{object}	RecordResponse
//	@Failure		404	{object}	RecordResponse
//	@Failure		500	{object}	RecordResponse
//	@Param			id		path		string			true	"ID formatted as string"
//	@Param			record	body		RecordEditable	true	"Record"
//	@Router			/v1/records/{id} [patch]
func UpdateRecord(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), RecordResponse{
			Error: &s,
		})
		return
	}

	var record models.Record
	err := models.DB.First(&record, &models.Record{
		DefaultModel: models.DefaultModel{
			ID: uri.ID.UUID,
		},
	}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecordResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RecordEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecordResponse{
			Error: &s,
		})
		return
	}

	var data RecordEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecordResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&record).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecordResponse{
			Error: &s,
		})
		return
	}

	apiResource := newRecord(record)
	c.JSON(http.StatusOK, RecordResponse{Data: &apiResource})
}

// DeleteRecord deletes a record
//
//	@Summary		Delete record
//	@Description	Deletes a record
//	@Tags			Records
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/records/{id} [delete]
func DeleteRecord(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var record models.Record
	err := models.DB.First(&record, &models.Record{
		DefaultModel: models.DefaultModel{
			ID: uri.ID.UUID,
		},
	}).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&record).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if events.Default != nil {
		err = events.Default.PublishRecord(c.Request.Context(), events.ActionDeleted, record)
		if err != nil {
			log.Error().Str("event", "publish failed").Str("record", record.ID.String()).Err(err).Msg("events")
		}
	}

	c.Status(http.StatusNoContent)
}
