package snapshot

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/bitmark-inc/ncov-charts/external/mocks"
	"github.com/bitmark-inc/ncov-charts/schema"
	"github.com/bitmark-inc/ncov-charts/store"
)

type ImportTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mongoMock *mocks.MockMongoStore
	dir       string
	files     *store.FileStore
}

func (ts *ImportTestSuite) SetupTest() {
	ts.mockCtrl = gomock.NewController(ts.T())
	ts.mongoMock = mocks.NewMockMongoStore(ts.mockCtrl)

	dir, err := ioutil.TempDir("", "import")
	ts.Require().NoError(err)
	ts.dir = dir
	ts.files = store.NewFileStore(dir)

	for _, d := range []schema.Date{{Month: 2, Day: 10}, {Month: 2, Day: 12}} {
		ts.Require().NoError(ts.files.SaveProvinces(d, []byte(`[{"provinceName":"湖北省","provinceShortName":"湖北","confirmedCount":1,"cities":[]}]`)))
		ts.Require().NoError(ts.files.SaveStatistic(d, []byte(`{"id":1,"confirmedCount":2}`)))
	}
}

func (ts *ImportTestSuite) TearDownTest() {
	ts.mockCtrl.Finish()
	os.RemoveAll(ts.dir)
}

func (ts *ImportTestSuite) TestImportCache() {
	gomock.InOrder(
		ts.mongoMock.EXPECT().
			SaveSnapshot(gomock.Any(), gomock.AssignableToTypeOf(schema.Snapshot{})).
			DoAndReturn(func(_ context.Context, s schema.Snapshot) error {
				ts.Equal("210", s.Key)
				return nil
			}),
		ts.mongoMock.EXPECT().
			SaveSnapshot(gomock.Any(), gomock.AssignableToTypeOf(schema.Snapshot{})).
			DoAndReturn(func(_ context.Context, s schema.Snapshot) error {
				ts.Equal("212", s.Key)
				return nil
			}),
	)

	n, err := ImportCache(context.Background(), ts.files, ts.mongoMock,
		schema.Date{Month: 2, Day: 9}, schema.Date{Month: 2, Day: 13}, 2020)
	ts.NoError(err)
	ts.Equal(2, n)
}

func (ts *ImportTestSuite) TestImportCacheWriteError() {
	ts.mongoMock.EXPECT().
		SaveSnapshot(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("write failed")).
		Times(1)

	n, err := ImportCache(context.Background(), ts.files, ts.mongoMock,
		schema.Date{Month: 2, Day: 9}, schema.Date{Month: 2, Day: 13}, 2020)
	ts.Error(err)
	ts.Equal(0, n)
}

func TestImportTestSuite(t *testing.T) {
	suite.Run(t, new(ImportTestSuite))
}
