package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/naveen/management/internal/app/models/dto"
	"github.com/naveen/management/internal/middleware"
	"github.com/naveen/management/internal/pkg/apperrors"
	"github.com/naveen/management/internal/web"
)

// parseID extracts the {id} path parameter.
func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// renderNotice renders the HTML notice page (success or error banner plus
// navigation links).
func renderNotice(c *gin.Context, status int, active string, success bool, message string, links ...web.Link) {
	title := "Success"
	if !success {
		title = "Error"
	}
	c.HTML(status, "notice.tmpl", gin.H{
		"Title":   title,
		"Active":  active,
		"Success": success,
		"Message": message,
		"Links":   links,
	})
}

// respondInvalidID reports a malformed {id} path parameter in the
// contract the request asked for.
func respondInvalidID(c *gin.Context, message, active, backHref, backLabel string) {
	err := apperrors.NewValidationError(message)
	if middleware.WantsJSON(c) {
		middleware.HandleAPIError(c, message, err)
		return
	}
	renderNotice(c, http.StatusBadRequest, active, false, message,
		web.Link{Href: backHref, Label: backLabel, Class: "nav-btn"})
}

// respondOperationError reports a failed operation in the contract the
// request asked for. HTML notices keep the original page wording:
// validation and blocked-delete messages stand alone, everything else is
// prefixed with the operation context.
func respondOperationError(c *gin.Context, message, active string, err error, links ...web.Link) {
	if middleware.WantsJSON(c) {
		middleware.HandleAPIError(c, message, err)
		return
	}

	status := apperrors.HTTPStatus(err)
	notice := err.Error()
	if status != http.StatusBadRequest && !errors.Is(err, apperrors.ErrValidation) {
		notice = message + ": " + err.Error()
	}
	renderNotice(c, status, active, false, notice, links...)
}

// respondListError reports a failed list fetch: JSON envelope for API
// consumers, error notice for browser views.
func respondListError(c *gin.Context, message, active string, err error) {
	if middleware.WantsJSON(c) {
		middleware.HandleAPIError(c, message, err)
		return
	}
	renderNotice(c, apperrors.HTTPStatus(err), active, false, message+": "+err.Error(),
		web.Link{Href: "/", Label: "Go Home", Class: "nav-btn"})
}

// bindRequest binds a form-encoded or JSON body into a request DTO.
// Binding selects by Content-Type, so both encodings land in the same
// struct and flow through the same validation.
func bindRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil {
		return apperrors.NewValidationError("Invalid request data: " + err.Error())
	}
	return nil
}

// respondCreated reports a successful create: 201 envelope with the new id
// for JSON consumers, a success notice for browsers.
func respondCreated(c *gin.Context, active, message string, id int64, htmlMessage string, links ...web.Link) {
	if middleware.WantsJSON(c) {
		c.JSON(http.StatusCreated, dto.NewDataResponse(message, gin.H{"id": id}))
		return
	}
	renderNotice(c, http.StatusOK, active, true, htmlMessage, links...)
}

// respondOK reports a successful update or delete.
func respondOK(c *gin.Context, active, message string, data interface{}, htmlMessage string, links ...web.Link) {
	if middleware.WantsJSON(c) {
		c.JSON(http.StatusOK, dto.NewDataResponse(message, data))
		return
	}
	renderNotice(c, http.StatusOK, active, true, htmlMessage, links...)
}
