package api

import (
	"net/http"
	"strconv"

	"github.com/Caarnus/newburgh-lodge/internal/db/repositories"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/responses"
)

const auditPageSize = 50

// ListAuditLogHandler handles GET /api/v1/admin/audit
//
// @Summary      Browse the audit trail
// @Description  Returns one page of audit entries, newest first.
// @Tags         Admin
// @Produce      json
// @Param        page  query  int  false  "Page number, 1-based"
// @Router       /api/v1/admin/audit [get]
func ListAuditLogHandler(repo *repositories.AuditLogRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}

		records, total, err := repo.ListPage(r.Context(), page, auditPageSize)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to load audit entries")
			return
		}

		rows := make([]responses.AuditLogRow, 0, len(records))
		for _, rec := range records {
			row := responses.AuditLogRow{
				ID:           rec.ID,
				ActorID:      rec.ActorID,
				ActorType:    rec.ActorType,
				Action:       rec.Action,
				SubjectID:    rec.SubjectID,
				Succeeded:    rec.Succeeded,
				ErrorMessage: rec.ErrorMessage,
				CreatedAt:    rec.CreatedAt,
			}
			if rec.SubjectType != nil {
				row.SubjectType = *rec.SubjectType
			}
			if rec.IP != nil {
				row.IP = *rec.IP
			}
			if rec.RequestID != nil {
				row.RequestID = *rec.RequestID
			}
			rows = append(rows, row)
		}

		resp := responses.AuditLogPage{
			Entries: rows,
			Total:   total,
			Page:    page,
			PerPage: auditPageSize,
		}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}
