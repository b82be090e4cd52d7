// Package httperr defines the stable error envelope of the API: every
// failure is {errmsg, errcode, extra} with a numeric code clients are
// expected to switch on. Codes are append-only.
package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind is one stable (message, code, status) triple.
type Kind struct {
	Message string
	Code    int
	Status  int
}

var (
	Internal          = Kind{"Mini Book API Exception", 0, http.StatusInternalServerError}
	InvalidBody       = Kind{"Invalid request body.", 1, http.StatusBadRequest}
	TokenRequired     = Kind{"A token is required to proceed this operation", 2, http.StatusForbidden}
	TokenInvalid      = Kind{"The token is invalid or expired", 3, http.StatusForbidden}
	BookNotFound      = Kind{"Book not found.", 4, http.StatusNotFound}
	InvalidB64        = Kind{"Invalid base64 encoding.", 5, http.StatusNotAcceptable}
	ImageCreation     = Kind{"Problem during image creation.", 6, http.StatusBadRequest}
	ImageNotFound     = Kind{"Image resource not found.", 7, http.StatusNotFound}
	InvalidResolution = Kind{"Invalid image resolution.", 8, http.StatusNotAcceptable}
	SaleNotFound      = Kind{"Sale not found.", 9, http.StatusNotFound}
	NotEnoughUnities  = Kind{"Not enough unities for sale.", 10, http.StatusUnprocessableEntity}
	SaleIsEmpty       = Kind{"Sale does not have any books.", 11, http.StatusUnprocessableEntity}
	SaleNotCancelable = Kind{"This sale can not be canceled, because it is already concluded.", 12, http.StatusUnprocessableEntity}
	SaleConcluded     = Kind{"This sale is already concluded.", 13, http.StatusUnprocessableEntity}
	PixFailure        = Kind{"Something went wrong on generating pix qrcode. Contact admin.", 14, http.StatusInternalServerError}
	BookReferenced    = Kind{"Book is referenced by existing sales.", 15, http.StatusUnprocessableEntity}
)

// Response is the wire form of a failure.
type Response struct {
	ErrMsg  string  `json:"errmsg"`
	ErrCode int     `json:"errcode"`
	Extra   *string `json:"extra"`
}

// Abort writes the envelope and stops the handler chain. The underlying
// error is attached to the context for the logging middleware.
func Abort(c *gin.Context, k Kind, err error) {
	AbortExtra(c, k, err, nil)
}

func AbortExtra(c *gin.Context, k Kind, err error, extra *string) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(k.Status, Response{
		ErrMsg:  k.Message,
		ErrCode: k.Code,
		Extra:   extra,
	})
}
