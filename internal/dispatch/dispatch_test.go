package dispatch

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type profile struct {
	FullName string `json:"full_name" binding:"required,min=2"`
	UserType string `json:"user_type" binding:"omitempty,oneof=buyer seller"`
}

type signupRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Budget   float64 `json:"budget" binding:"gte=100"`
	UserData profile `json:"userData" binding:"required"`
}

func serve(t *testing.T, table Table, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := gin.New()
	r.POST("/", table.Serve)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestTable_Serve_RoutesByAction(t *testing.T) {
	var gotAction string
	table := Table{
		"ping": func(c *gin.Context, body []byte) {
			gotAction = logger.Action(c)
			c.JSON(http.StatusOK, gin.H{"pong": true})
		},
	}

	w := serve(t, table, `{"action":"ping"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ping", gotAction)
}

func TestTable_Serve_UnknownAction(t *testing.T) {
	table := Table{"ping": func(c *gin.Context, body []byte) {}}

	for _, body := range []string{`{"action":"pong"}`, `{}`, ``} {
		w := serve(t, table, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)

		var resp httperr.HTTPError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_action", resp.Code)
	}
}

func TestTable_Serve_InvalidJSON(t *testing.T) {
	w := serve(t, Table{}, `{"action":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_json")
}

func TestBind_FieldErrors(t *testing.T) {
	_, err := Bind[signupRequest]([]byte(`{"email":"nope","password":"123","budget":5,"userData":{"full_name":"J","user_type":"admin"}}`))
	require.Error(t, err)

	e := httperr.As(err)
	assert.Equal(t, httperr.KindValidation, e.Kind)
	assert.Equal(t, "must be a valid email address", e.Fields["email"])
	assert.Equal(t, "must be at least 6 characters", e.Fields["password"])
	assert.Equal(t, "must be at least 100", e.Fields["budget"])
	assert.Equal(t, "must be at least 2 characters", e.Fields["userData.full_name"])
	assert.Equal(t, "must be one of: buyer, seller", e.Fields["userData.user_type"])
}

func TestBind_TypeMismatch(t *testing.T) {
	_, err := Bind[signupRequest]([]byte(`{"budget":"lots"}`))
	require.Error(t, err)

	e := httperr.As(err)
	assert.Equal(t, httperr.KindValidation, e.Kind)
	assert.Contains(t, e.Fields, "budget")
}

func TestBind_OK(t *testing.T) {
	req, err := Bind[signupRequest]([]byte(`{"action":"signup","email":"jane@example.com","password":"secret1","budget":100,"userData":{"full_name":"Jane"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Jane", req.UserData.FullName)
}

type listingQuery struct {
	Industry string   `form:"industry" json:"industry"`
	MinPrice *float64 `form:"min_price" json:"min_price" binding:"omitempty,gte=0"`
}

func bindQuery(rawQuery string) (*listingQuery, error) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return BindQuery[listingQuery](c)
}

func TestBindQuery(t *testing.T) {
	q, err := bindQuery("industry=Retail&min_price=5000")
	require.NoError(t, err)
	assert.Equal(t, "Retail", q.Industry)
	require.NotNil(t, q.MinPrice)
	assert.Equal(t, 5000.0, *q.MinPrice)

	q, err = bindQuery("")
	require.NoError(t, err)
	assert.Nil(t, q.MinPrice)

	_, err = bindQuery("min_price=cheap")
	assert.True(t, httperr.Is(err, "invalid_query"))

	_, err = bindQuery("min_price=-1")
	require.Error(t, err)
	assert.Contains(t, httperr.As(err).Fields, "min_price")
}

type listingRequest struct {
	Title    string  `json:"title" binding:"required,notblank,max=200"`
	Location *string `json:"location" binding:"omitempty,notblank"`
}

func TestBind_NotBlank(t *testing.T) {
	req, err := Bind[listingRequest]([]byte(`{"title":"Shop"}`))
	require.NoError(t, err)
	assert.Equal(t, "Shop", req.Title)
	assert.Nil(t, req.Location)

	_, err = Bind[listingRequest]([]byte(`{"title":"   ","location":" \t"}`))
	require.Error(t, err)
	e := httperr.As(err)
	assert.Equal(t, "must not be blank", e.Fields["title"])
	assert.Equal(t, "must not be blank", e.Fields["location"])
}
