package chart

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/ncov-charts/geo"
	"github.com/bitmark-inc/ncov-charts/schema"
	"github.com/bitmark-inc/ncov-charts/stats"
)

type RendererTestSuite struct {
	suite.Suite
	dir      string
	scope    tally.TestScope
	renderer *Renderer
	snapshot schema.Snapshot
}

func (s *RendererTestSuite) SetupTest() {
	dir, err := ioutil.TempDir("", "chart")
	s.Require().NoError(err)
	s.dir = dir

	s.scope = tally.NewTestScope("", map[string]string{})
	s.renderer = New(Config{
		Dir:   dir,
		Focus: "湖北",
		Lang:  "zh",
	}, geo.NewCityNameResolver([]string{"武汉", "黄冈", "广州", "深圳"}), s.scope)

	date := schema.Date{Month: 2, Day: 12}
	s.snapshot = schema.Snapshot{
		Key:  date.Key(),
		Date: date,
		Provinces: []schema.Province{
			{
				Name:           "湖北省",
				ShortName:      "湖北",
				ConfirmedCount: 3000,
				Cities: []schema.City{
					{Name: "黄冈", ConfirmedCount: 1000},
					{Name: "武汉", ConfirmedCount: 1990},
					{Name: "未知", ConfirmedCount: 10},
				},
			},
			{
				Name:           "广东省",
				ShortName:      "广东",
				ConfirmedCount: 200,
			},
		},
		Total: schema.TotalStatistic{ConfirmedCount: 3200},
	}
}

func (s *RendererTestSuite) TearDownTest() {
	os.RemoveAll(s.dir)
}

func (s *RendererTestSuite) counter(name string) int64 {
	for _, c := range s.scope.Snapshot().Counters() {
		if c.Name() == name {
			return c.Value()
		}
	}
	return 0
}

func (s *RendererTestSuite) read(name string) string {
	b, err := ioutil.ReadFile(filepath.Join(s.dir, "212", name))
	s.Require().NoError(err)
	return string(b)
}

func (s *RendererTestSuite) TestResolveCities() {
	labels, counts := s.renderer.ResolveCities(s.snapshot.Provinces[0])
	s.Equal([]string{"武汉市", "黄冈市"}, labels)
	s.Equal([]int{1990, 1000}, counts)
	s.Equal(int64(1), s.counter(metricUnresolved))
}

func (s *RendererTestSuite) TestRenderAll() {
	err := s.renderer.Render(s.snapshot, stats.DefaultTendency(), Selection{
		Tendency: true,
		Pie:      true,
		Map:      true,
	})
	s.NoError(err)

	tendency := s.read(TendencyFile)
	s.Contains(tendency, "全国新增确诊病例")
	s.Contains(tendency, "湖北新增确诊病例")
	s.Contains(tendency, "其他省份新增病例")

	pie := s.read(PieFile)
	s.Contains(pie, "全国-3200例")
	s.Contains(pie, "湖北-3000例")
	s.NotContains(pie, "广东-200例")

	m := s.read(MapFile)
	s.Contains(m, "湖北-3000例")
	s.Contains(m, "武汉市")
	s.NotContains(m, "广东-200例")
	s.Equal(2, strings.Count(m, "setOption({visualMap:"))

	// tendency, country and Hubei pies, country and Hubei maps
	s.Equal(int64(5), s.counter(metricRendered))
	// Guangdong has no cities, once per page
	s.Equal(int64(2), s.counter(metricSkipped))
}

func (s *RendererTestSuite) TestRenderSelection() {
	s.NoError(s.renderer.Render(s.snapshot, stats.DefaultTendency(), Selection{Pie: true}))

	_, err := os.Stat(filepath.Join(s.dir, "212", PieFile))
	s.NoError(err)
	_, err = os.Stat(filepath.Join(s.dir, "212", TendencyFile))
	s.True(os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(s.dir, "212", MapFile))
	s.True(os.IsNotExist(err))
}

func (s *RendererTestSuite) TestMapPageSkipsUnresolvedProvince() {
	s.snapshot.Provinces = append(s.snapshot.Provinces, schema.Province{
		Name:           "浙江省",
		ShortName:      "浙江",
		ConfirmedCount: 10,
		Cities: []schema.City{
			{Name: "未知", ConfirmedCount: 10},
		},
	})

	page, err := s.renderer.MapPage(s.snapshot)
	s.NoError(err)
	s.NotNil(page)
	s.Equal(int64(2), s.counter(metricSkipped))
	s.Equal(int64(2), s.counter(metricUnresolved))
}

func (s *RendererTestSuite) TestTendencyLabelsSeriesProvince() {
	r := New(Config{Dir: s.dir, Focus: "广东", Lang: "zh"}, geo.NewCityNameResolver(nil), s.scope)

	line := r.Tendency(stats.DefaultTendency())
	s.Require().Len(line.MultiSeries, 3)
	s.Equal("湖北新增确诊病例", line.MultiSeries[1].Name)

	tendency, err := stats.NewTendency("", []string{"2-12"}, []int{10}, []int{4})
	s.Require().NoError(err)
	line = r.Tendency(tendency)
	s.Equal("广东新增确诊病例", line.MultiSeries[1].Name)
}

func (s *RendererTestSuite) TestVisualMapScript() {
	script, err := visualMapScript("abc", DefaultPieces())
	s.NoError(err)
	s.True(strings.HasPrefix(script, "goecharts_abc.setOption({visualMap: {"))
	s.Contains(script, `"type":"piecewise"`)
	s.Contains(script, `"color":"#450704"`)
}

func TestRendererTestSuite(t *testing.T) {
	suite.Run(t, new(RendererTestSuite))
}
