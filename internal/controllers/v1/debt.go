package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scastellanosl/coinary-backend/internal/httputil"
	"github.com/scastellanosl/coinary-backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterDebtRoutes registers the routes for debts with
// the RouterGroup that is passed.
func RegisterDebtRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDebtList)
		r.GET("", GetDebts)
		r.POST("", CreateDebts)
	}

	// Debt with ID
	{
		r.OPTIONS("/:id", OptionsDebtDetail)
		r.GET("/:id", GetDebt)
		r.PATCH("/:id", UpdateDebt)
		r.DELETE("/:id", DeleteDebt)
	}
}

// OptionsDebtList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Debts
//	@Success		204
//	@Router			/v1/debts [options]
func OptionsDebtList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsDebtDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Debts
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/debts/{id} [options]
func OptionsDebtDetail(c *gin.Context) {
	resourceOptionsDetail[models.Debt](c)
}

// CreateDebts creates new debts
//
//	@Summary		Create debts
//	@Description	Creates new debts
//	@Tags			Debts
//	@Produce		json
//	@Success		201	{object}	DebtCreateResponse
//	@Failure		400	{object}	DebtCreateResponse
//	@Failure		404	{object}	DebtCreateResponse
//	@Failure		500	{object}	DebtCreateResponse
//	@Param			debts	body		[]DebtEditable	true	"Debts"
//	@Router			/v1/debts [post]
func CreateDebts(c *gin.Context) {
	var editables []DebtEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtCreateResponse{
			Error: &s,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DebtCreateResponse{}

	for _, editable := range editables {
		debt := editable.model()

		err = models.DB.Create(&debt).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newDebt(debt)
		r.Data = append(r.Data, DebtResponse{Data: &data})
	}

	c.JSON(status, r)
}

// GetDebts returns debts filtered by the query parameters
//
//	@Summary		Get debts
//	@Description	Returns a list of debts
//	@Tags			Debts
//	@Produce		json
//	@Success		200	{object}	DebtListResponse
//	@Failure		400	{object}	DebtListResponse
//	@Failure		500	{object}	DebtListResponse
//	@Router			/v1/debts [get]
//	@Param			name			query	string	false	"Filter by name"
//	@Param			note			query	string	false	"Filter by note"
//	@Param			search			query	string	false	"Search for this text in name and note"
//	@Param			counterparty	query	string	false	"Filter by counterparty"
//	@Param			ledger			query	string	false	"Filter by ledger ID"
//	@Param			dueBefore		query	string	false	"Debts due before this RFC3339 timestamp"
//	@Param			settled			query	bool	false	"Is the debt settled?"
//	@Param			offset			query	uint	false	"The offset of the first Debt returned. Defaults to 0."
//	@Param			limit			query	int		false	"Maximum number of Debts to return. Defaults to 50."
func GetDebts(c *gin.Context) {
	var filter DebtQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, DebtListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("datetime(due_date) ASC, name ASC").
		Where(filter.model(), queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	if !filter.DueBefore.IsZero() {
		q = q.Where("datetime(due_date) < datetime(?)", filter.DueBefore)
	}

	// Set the offset. Does not need checking since the default offset is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 debts and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var debts []models.Debt
	err := q.Find(&debts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Debt, 0, len(debts))
	for _, debt := range debts {
		data = append(data, newDebt(debt))
	}

	c.JSON(http.StatusOK, DebtListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// GetDebt returns a specific debt
//
//	@Summary		Get debt
//	@Description	Returns a specific debt
//	@Tags			Debts
//	@Produce		json
//	@Success		200	{object}	DebtResponse
//	@Failure		400	{object}	DebtResponse
//	@Failure		404	{object}	DebtResponse
//	@Failure		500	{object}	DebtResponse
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/debts/{id} [get]
func GetDebt(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	var debt models.Debt
	err := models.DB.First(&debt, &models.Debt{
		DefaultModel: models.DefaultModel{
			ID: uri.ID.UUID,
		},
	}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	data := newDebt(debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &data})
}

// UpdateDebt updates a debt
//
//	@Summary		Update debt
//	@Description	Updates an existing debt. Only values to be updated need to be specified.
//	@Tags			Debts
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	DebtResponse
//	@Failure		400	{object}	DebtResponse
//	@Failure		404	{object}	DebtResponse
//	@Failure		500	{object}	DebtResponse
//	@Param			id		path		string			true	"ID formatted as string"
//	@Param			debt	body		DebtEditable	true	"Debt"
//	@Router			/v1/debts/{id} [patch]
func UpdateDebt(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	var debt models.Debt
	err := models.DB.First(&debt, &models.Debt{
		DefaultModel: models.DefaultModel{
			ID: uri.ID.UUID,
		},
	}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DebtEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	var data DebtEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&debt).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	apiResource := newDebt(debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &apiResource})
}

// DeleteDebt deletes a debt
//
//	@Summary		Delete debt
//	@Description	Deletes a debt
//	@Tags			Debts
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/debts/{id} [delete]
func DeleteDebt(c *gin.Context) {
	deleteResource[models.Debt](c)
}
