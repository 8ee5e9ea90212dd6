package dxy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/ncov-charts/schema"
)

// The dashboard embeds its data as scripts of the form
//
//	<script id="getAreaStat">try { window.getAreaStat = [...]}catch(e){}</script>
//
// The value assigned after the first "=" is decoded as a single JSON value.
// Pages without those scripts fall back to scanning the raw markup.
const (
	areaStatScriptID  = "getAreaStat"
	statisticScriptID = "getStatisticsService"
)

var (
	ErrProvincesNotFound = fmt.Errorf("province statistics not found in page")
	ErrStatisticNotFound = fmt.Errorf("total statistic not found in page")
	ErrNoAssignment      = fmt.Errorf("no assignment in script")

	provincesPattern = regexp.MustCompile(`\[[^>]+\]`)
	statisticPattern = regexp.MustCompile(`\{"id":1,[^(>})]+\}`)

	infectSourceKey = []byte(`"infectSource"`)
)

// ParseHTML - extract province list and total statistic from a dashboard page
func ParseHTML(html []byte) (*Page, error) {
	scripts, err := scriptsByID(html)
	if nil != err {
		return nil, err
	}

	provincesJSON, provinces, err := ExtractProvinces(html, scripts[areaStatScriptID])
	if nil != err {
		return nil, err
	}

	statisticJSON, statistic, err := ExtractStatistic(html, scripts[statisticScriptID])
	if nil != err {
		return nil, err
	}

	return &Page{
		HTML:          html,
		ProvincesJSON: provincesJSON,
		StatisticJSON: statisticJSON,
		Provinces:     provinces,
		Statistic:     statistic,
	}, nil
}

func scriptsByID(html []byte) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if nil != err {
		return nil, err
	}

	scripts := make(map[string]string)
	doc.Find("script[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		scripts[id] = s.Text()
	})
	return scripts, nil
}

// assignedValue - the first JSON value after the first "=" of a script
func assignedValue(script string) ([]byte, error) {
	i := strings.Index(script, "=")
	if i < 0 {
		return nil, ErrNoAssignment
	}

	var raw json.RawMessage
	if err := json.NewDecoder(strings.NewReader(script[i+1:])).Decode(&raw); nil != err {
		return nil, err
	}
	return raw, nil
}

// ExtractProvinces - province list from the area script, or from the first
// bracketed span of the markup that decodes as one
func ExtractProvinces(html []byte, script string) ([]byte, []schema.Province, error) {
	if script != "" {
		raw, err := assignedValue(script)
		if nil == err {
			var provinces []schema.Province
			if provinces, err = decodeProvinces(raw); nil == err {
				return raw, provinces, nil
			}
		}
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"script": areaStatScriptID,
			"error":  err,
		}).Warn("decode script, scan markup instead")
	}

	for _, match := range provincesPattern.FindAll(html, -1) {
		if provinces, err := decodeProvinces(match); nil == err {
			return match, provinces, nil
		}
	}

	return nil, nil, ErrProvincesNotFound
}

func decodeProvinces(raw []byte) ([]schema.Province, error) {
	var probe []struct {
		ProvinceName string           `json:"provinceName"`
		Cities       *json.RawMessage `json:"cities"`
	}
	if err := json.Unmarshal(raw, &probe); nil != err {
		return nil, err
	}

	if len(probe) == 0 || probe[0].ProvinceName == "" || probe[0].Cities == nil {
		return nil, ErrProvincesNotFound
	}

	var provinces []schema.Province
	if err := json.Unmarshal(raw, &provinces); nil != err {
		return nil, err
	}
	return provinces, nil
}

// ExtractStatistic - total statistic from the statistic script, or from the
// first {"id":1,...} object of the markup mentioning infectSource
func ExtractStatistic(html []byte, script string) ([]byte, schema.TotalStatistic, error) {
	if script != "" {
		raw, err := assignedValue(script)
		if nil == err {
			var statistic schema.TotalStatistic
			if statistic, err = decodeStatistic(raw); nil == err {
				return raw, statistic, nil
			}
		}
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"script": statisticScriptID,
			"error":  err,
		}).Warn("decode script, scan markup instead")
	}

	for _, match := range statisticPattern.FindAll(html, -1) {
		if !bytes.Contains(match, infectSourceKey) {
			continue
		}
		statistic, err := decodeStatistic(match)
		if nil != err {
			return nil, schema.TotalStatistic{}, err
		}
		return match, statistic, nil
	}

	return nil, schema.TotalStatistic{}, ErrStatisticNotFound
}

func decodeStatistic(raw []byte) (schema.TotalStatistic, error) {
	var statistic schema.TotalStatistic
	if !bytes.Contains(raw, infectSourceKey) {
		return statistic, ErrStatisticNotFound
	}
	err := json.Unmarshal(raw, &statistic)
	return statistic, err
}
