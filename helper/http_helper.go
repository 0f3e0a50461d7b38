package helper

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validator "gopkg.in/go-playground/validator.v9"
	entrans "gopkg.in/go-playground/validator.v9/translations/en"
)

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	v := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	if err := entrans.RegisterDefaultTranslations(v, trans); err != nil {
		// Fall back to untranslated messages.
		trans = nil
	}

	return &HTTPHelper{Validate: v, Translator: trans}
}

func (u *HTTPHelper) getTypeData(i interface{}) string {
	v := reflect.ValueOf(i)
	v = reflect.Indirect(v)

	return v.Type().String()
}

// GetStatusCode maps the models error taxonomy to HTTP status codes.
func (u *HTTPHelper) GetStatusCode(err error) int {
	statusCode := http.StatusOK
	if err != nil {
		switch u.getTypeData(err) {
		case "models.ErrorValidation":
			statusCode = http.StatusBadRequest
		case "models.ErrorUnauthorized":
			statusCode = http.StatusUnauthorized
		case "models.ErrorForbidden":
			statusCode = http.StatusForbidden
		case "models.ErrorNotFound":
			statusCode = http.StatusNotFound
		default:
			statusCode = http.StatusInternalServerError
		}
	}

	return statusCode
}

// SendError ...
// Converts a taxonomy error into the portal's {error} wire shape.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	c.JSON(u.GetStatusCode(err), gin.H{"error": err.Error()})
}

// SendErrorMessage ...
// Sends {error} with an explicit status code.
func (u *HTTPHelper) SendErrorMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// SendValidationError ...
// Flattens translated validation errors into a single {error} message.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	messages := make([]string, 0, len(validationErrors))

	if u.Translator != nil {
		translated := validationErrors.Translate(u.Translator)
		for _, err := range validationErrors {
			messages = append(messages, translated[err.Namespace()])
		}
	} else {
		for _, err := range validationErrors {
			messages = append(messages, err.Field()+" is invalid")
		}
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": strings.Join(messages, "; ")})
}

// SendData ...
// Send success response to consumers.
func (u *HTTPHelper) SendData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
