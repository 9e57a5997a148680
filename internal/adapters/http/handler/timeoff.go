package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ogurasousui/codex-timeoff/internal/adapters/apiservice"
)

// ListRequests は employeeId または managerId で申請一覧を返します。両方の指定は 400 です。
func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := apiservice.ListQuery{
		Status: q.Get("status"),
		Search: q.Get("q"),
		Sort:   q.Get("sort"),
	}

	switch {
	case q.Has("employeeId") && q.Has("managerId"):
		writeResponse(h, w, r, apiservice.Response[any]{
			Error:  "employeeId and managerId are mutually exclusive",
			Status: http.StatusBadRequest,
		})
	case q.Has("employeeId"):
		writeResponse(h, w, r, h.api.ListEmployeeRequests(r.Context(), q.Get("employeeId"), query))
	case q.Has("managerId"):
		writeResponse(h, w, r, h.api.ListManagerRequests(r.Context(), q.Get("managerId"), query))
	default:
		writeResponse(h, w, r, apiservice.Response[any]{
			Error:  "employeeId or managerId is required",
			Status: http.StatusBadRequest,
		})
	}
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeResponse(h, w, r, h.api.GetBoard(r.Context(), apiservice.BoardParams{
		EmployeeID: q.Get("employeeId"),
		ManagerID:  q.Get("managerId"),
		Search:     q.Get("q"),
		Sort:       q.Get("sort"),
	}))
}

func (h *Handler) GetRequest(w http.ResponseWriter, r *http.Request) {
	writeResponse(h, w, r, h.api.GetRequest(r.Context(), chi.URLParam(r, "id")))
}

// CreateRequest は申請を作成します。employeeId を省略した場合はセッションの操作ユーザーで申請します。
func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID string `json:"employeeId"`
		StartDate  string `json:"startDate" validate:"required,datetime=2006-01-02"`
		EndDate    string `json:"endDate" validate:"required,datetime=2006-01-02"`
		Reason     string `json:"reason" validate:"required"`
	}

	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	trimAll(&req.EmployeeID, &req.StartDate, &req.EndDate, &req.Reason)
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.EmployeeID == "" {
		current := h.api.CurrentUserID(r.Context())
		if !current.OK() {
			writeResponse(h, w, r, current)
			return
		}
		req.EmployeeID = current.Data.UserID
	}

	writeResponse(h, w, r, h.api.CreateRequest(r.Context(), apiservice.CreateRequestParams{
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
	}))
}

func (h *Handler) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status" validate:"required,oneof=approved denied"`
	}

	if err := h.readJSON(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	trimAll(&req.Status)
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	writeResponse(h, w, r, h.api.UpdateRequestStatus(r.Context(), chi.URLParam(r, "id"), req.Status))
}
