package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/ncov-charts/chart"
	"github.com/bitmark-inc/ncov-charts/schema"
	"github.com/bitmark-inc/ncov-charts/stats"
	"github.com/bitmark-inc/ncov-charts/store"
)

type statusResponse struct {
	Date      string       `json:"date"`
	Name      string       `json:"name,omitempty"`
	Confirmed int          `json:"confirmed"`
	Labels    []string     `json:"labels"`
	Counts    []int        `json:"counts"`
	Pieces    chart.Pieces `json:"pieces"`
}

// loadSnapshot - snapshot of the :date param, aborts the request on failure
func (s *Server) loadSnapshot(c *gin.Context) (schema.Snapshot, bool) {
	date, err := schema.ParseDate(c.Param("date"))
	if nil != err {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return schema.Snapshot{}, false
	}

	snapshot, err := s.reader.Snapshot(c.Request.Context(), date)
	if nil != err {
		if errors.Is(err, store.ErrSnapshotNotFound) {
			abortWithEncoding(c, http.StatusNotFound, errorSnapshotNotFound, err)
			return schema.Snapshot{}, false
		}
		shouldInterupt(err, c)
		return schema.Snapshot{}, false
	}

	return snapshot, true
}

// snapshotStatus - province counts of a day, largest first, with the country
// map pieces
func (s *Server) snapshotStatus(c *gin.Context) {
	snapshot, ok := s.loadSnapshot(c)
	if !ok {
		return
	}

	labels, counts := stats.ProvinceStatus(snapshot.Provinces)
	c.JSON(http.StatusOK, statusResponse{
		Date:      snapshot.Date.String(),
		Confirmed: snapshot.Total.ConfirmedCount,
		Labels:    labels,
		Counts:    counts,
		Pieces:    chart.DefaultPieces(),
	})
}

// provinceStatus - map region names and counts of a province with pieces
// generated from them
func (s *Server) provinceStatus(c *gin.Context) {
	snapshot, ok := s.loadSnapshot(c)
	if !ok {
		return
	}

	p, found := snapshot.Province(c.Param("name"))
	if !found {
		abortWithEncoding(c, http.StatusNotFound, errorProvinceNotFound)
		return
	}

	labels, counts := s.renderer.ResolveCities(p)
	min, max := stats.MinMax(counts)
	c.JSON(http.StatusOK, statusResponse{
		Date:      snapshot.Date.String(),
		Name:      p.ShortName,
		Confirmed: p.ConfirmedCount,
		Labels:    labels,
		Counts:    counts,
		Pieces:    chart.NewPieces(float64(min), float64(max), s.buckets),
	})
}
