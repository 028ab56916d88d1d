package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scastellanosl/coinary-backend/internal/httputil"
	"github.com/scastellanosl/coinary-backend/internal/models"
	"github.com/scastellanosl/coinary-backend/internal/types"
	"golang.org/x/exp/slices"
)

// RegisterGoalRoutes registers the routes for goals with
// the RouterGroup that is passed.
func RegisterGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsGoalList)
		r.GET("", GetGoals)
		r.POST("", CreateGoals)
	}

	// Goal with ID
	{
		r.OPTIONS("/:id", OptionsGoalDetail)
		r.GET("/:id", GetGoal)
		r.PATCH("/:id", UpdateGoal)
		r.DELETE("/:id", DeleteGoal)
	}
}

// OptionsGoalList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Goals
//	@Success		204
//	@Router			/v1/goals [options]
func OptionsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsGoalDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Goals
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/goals/{id} [options]
func OptionsGoalDetail(c *gin.Context) {
	resourceOptionsDetail[models.Goal](c)
}

// CreateGoals creates new goals
//
//	@Summary		Create goals
//	@Description	Creates new goals
//	@Tags			Goals
//	@Produce		json
//	@Success		201	{object}	GoalCreateResponse
//	@Failure		400	{object}	GoalCreateResponse
//	@Failure		404	{object}	GoalCreateResponse
//	@Failure		500	{object}	GoalCreateResponse
//	@Param			goals	body		[]GoalEditable	true	"Goals"
//	@Router			/v1/goals [post]
func CreateGoals(c *gin.Context) {
	var editables []GoalEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalCreateResponse{
			Error: &s,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := GoalCreateResponse{}

	for _, editable := range editables {
		goal := editable.model()

		err = models.DB.Create(&goal).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newGoal(goal)
		r.Data = append(r.Data, GoalResponse{Data: &data})
	}

	c.JSON(status, r)
}

// GetGoals returns goals filtered by the query parameters
//
//	@Summary		Get goals
//	@Description	Returns a list of goals
//	@Tags			Goals
//	@Produce		json
//	@Success		200	{object}	GoalListResponse
//	@Failure		400	{object}	GoalListResponse
//	@Failure		500	{object}	GoalListResponse
//	@Router			/v1/goals [get]
//	@Param			name		query	string	false	"Filter by name"
//	@Param			note		query	string	false	"Filter by note"
//	@Param			search		query	string	false	"Search for this text in name and note"
//	@Param			ledger		query	string	false	"Filter by ledger ID"
//	@Param			month		query	string	false	"Filter by month"
//	@Param			archived	query	bool	false	"Is the goal archived?"
//	@Param			offset		query	uint	false	"The offset of the first Goal returned. Defaults to 0."
//	@Param			limit		query	int		false	"Maximum number of Goals to return. Defaults to 50."
func GetGoals(c *gin.Context) {
	var filter GoalQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, GoalListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, GoalListResponse{
				Error: &s,
			})
			return
		}
		q = q.Where("month = ?", month)
	}

	// Set the offset. Does not need checking since the default offset is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 goals and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var goals []models.Goal
	err := q.Find(&goals).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, newGoal(goal))
	}

	c.JSON(http.StatusOK, GoalListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// GetGoal returns a specific goal
//
//	@Summary		Get goal
//	@Description	Returns a specific goal
//	@Tags			Goals
//	@Produce		json
//	@Success		200	{object}	GoalResponse
//	@Failure		400	{object}	GoalResponse
//	@Failure		404	{object}	GoalResponse
//	@Failure		500	{object}	GoalResponse
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/goals/{id} [get]
func GetGoal(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	var goal models.Goal
	err := models.DB.First(&goal, &models.Goal{
		DefaultModel: models.DefaultModel{
			ID: uri.ID.UUID,
		},
	}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	data := newGoal(goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &data})
}

// UpdateGoal updates a goal
//
//	@Summary		Update goal
//	@Description	Updates an existing goal. Only values to be updated need to be specified.
//	@Tags			Goals
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	GoalResponse
//	@Failure		400	{object}	GoalResponse
//	@Failure		404	{object}	GoalResponse
//	@Failure		500	{object}	GoalResponse
//	@Param			id		path		string			true	"ID formatted as string"
//	@Param			goal	body		GoalEditable	true	"Goal"
//	@Router			/v1/goals/{id} [patch]
func UpdateGoal(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	var goal models.Goal
	err := models.DB.First(&goal, &models.Goal{
		DefaultModel: models.DefaultModel{
			ID: uri.ID.UUID,
		},
	}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, GoalEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	var data GoalEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&goal).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	apiResource := newGoal(goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// DeleteGoal deletes a goal
//
//	@Summary		Delete goal
//	@Description	Deletes a goal
//	@Tags			Goals
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/goals/{id} [delete]
func DeleteGoal(c *gin.Context) {
	deleteResource[models.Goal](c)
}
