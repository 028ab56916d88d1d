package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scastellanosl/coinary-backend/internal/httputil"
	"github.com/scastellanosl/coinary-backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterLedgerRoutes registers the routes for ledgers with
// the RouterGroup that is passed.
func RegisterLedgerRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsLedgerList)
		r.GET("", GetLedgers)
		r.POST("", CreateLedgers)
	}

	// Ledger with ID
	{
		r.OPTIONS("/:id", OptionsLedgerDetail)
		r.GET("/:id", GetLedger)
		r.PATCH("/:id", UpdateLedger)
		r.DELETE("/:id", DeleteLedger)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledgers
// @Success		204
// @Router			/v1/ledgers [options]
func OptionsLedgerList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledgers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/ledgers/{id} [options]
func OptionsLedgerDetail(c *gin.Context) {
	resourceOptionsDetail[models.Ledger](c)
}

// @Summary		Create ledgers
// @Description	Creates new ledgers
// @Tags			Ledgers
// @Accept			json
// @Produce		json
// @Success		201		{object}	LedgerCreateResponse
// @Failure		400		{object}	LedgerCreateResponse
// @Failure		500		{object}	LedgerCreateResponse
// @Param			ledgers	body		[]LedgerEditable	true	"Ledgers"
// @Router			/v1/ledgers [post]
func CreateLedgers(c *gin.Context) {
	var editables []LedgerEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := LedgerCreateResponse{}

	for _, editable := range editables {
		ledger := editable.model()

		err := models.DB.Create(&ledger).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newLedger(ledger)
		r.Data = append(r.Data, LedgerResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List ledgers
// @Description	Returns a list of ledgers
// @Tags			Ledgers
// @Produce		json
// @Success		200	{object}	LedgerListResponse
// @Failure		500	{object}	LedgerListResponse
// @Router			/v1/ledgers [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			currency	query	string	false	"Filter by currency"
// @Param			archived	query	bool	false	"Is the ledger archived?"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first Ledger returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Ledgers to return. Defaults to 50."
func GetLedgers(c *gin.Context) {
	var filter LedgerQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var ledgers []models.Ledger

	// Always sort by name
	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 ledgers and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&ledgers).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Ledger, 0)
	for _, ledger := range ledgers {
		apiResources = append(apiResources, newLedger(ledger))
	}

	c.JSON(http.StatusOK, LedgerListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get ledger
// @Description	Returns a specific ledger
// @Tags			Ledgers
// @Produce		json
// @Success		200	{object}	LedgerResponse
// @Failure		400	{object}	LedgerResponse
// @Failure		404	{object}	LedgerResponse
// @Failure		500	{object}	LedgerResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/ledgers/{id} [get]
func GetLedger(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &s,
		})
		return
	}

	var ledger models.Ledger
	err = models.DB.First(&ledger, &models.Ledger{
		DefaultModel: models.DefaultModel{
			ID: uri.ID.UUID,
		},
	}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &s,
		})
		return
	}

	apiResource := newLedger(ledger)
	c.JSON(http.StatusOK, LedgerResponse{Data: &apiResource})
}

// @Summary		Update ledger
// @Description	Update an existing ledger. Only values to be updated need to be specified.
// @Tags			Ledgers
// @Accept			json
// @Produce		json
// @Success		200		{object}	LedgerResponse
// @Failure		400		{object}	LedgerResponse
// @Failure		404		{object}	LedgerResponse
// @Failure		500		{object}	LedgerResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			ledger	body		LedgerEditable	true	"Ledger"
// @Router			/v1/ledgers/{id} [patch]
func UpdateLedger(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &s,
		})
		return
	}

	var ledger models.Ledger
	err = models.DB.First(&ledger, &models.Ledger{
		DefaultModel: models.DefaultModel{
			ID: uri.ID.UUID,
		},
	}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, LedgerEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &s,
		})
		return
	}

	var data LedgerEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&ledger).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &s,
		})
		return
	}

	apiResource := newLedger(ledger)
	c.JSON(http.StatusOK, LedgerResponse{Data: &apiResource})
}

// @Summary		Delete ledger
// @Description	Deletes a ledger
// @Tags			Ledgers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/ledgers/{id} [delete]
func DeleteLedger(c *gin.Context) {
	deleteResource[models.Ledger](c)
}
