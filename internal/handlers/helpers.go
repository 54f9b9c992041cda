package handlers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dentalcare-app/clinic-api/internal/dto"
	"github.com/dentalcare-app/clinic-api/internal/httperr"
	"github.com/dentalcare-app/clinic-api/internal/store"
)

// ======================================================
// SHARED HELPERS
// ======================================================

// parseID reads a numeric path parameter. A false return means the error
// response has already been written.
func parseID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid "+param+" parameter.")
		return 0, false
	}
	return uint(id), true
}

// parseOptionalID reads a numeric query parameter; nil when absent.
func parseOptionalID(c *gin.Context, key string) (*uint, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+key, "Invalid "+key+" parameter.")
		return nil, false
	}
	v := uint(id)
	return &v, true
}

// patientNames memoizes patient full names for list rendering.
func patientNames(ctx context.Context, st store.Store) dto.NameLookup {
	seen := map[uint]string{}
	return func(id uint) string {
		if name, ok := seen[id]; ok {
			return name
		}
		name := fmt.Sprintf("patient %d", id)
		if p, err := st.PatientByID(ctx, id); err == nil {
			name = p.FullName()
		}
		seen[id] = name
		return name
	}
}

// doctorNames memoizes doctor full names for list rendering.
func doctorNames(ctx context.Context, st store.Store) dto.NameLookup {
	seen := map[uint]string{}
	return func(id uint) string {
		if name, ok := seen[id]; ok {
			return name
		}
		name := fmt.Sprintf("doctor %d", id)
		if d, err := st.DoctorByID(ctx, id); err == nil {
			name = d.FullName()
		}
		seen[id] = name
		return name
	}
}
