package geo

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/bitmark-inc/ncov-charts/consts"
)

type ResolverTestSuite struct {
	suite.Suite
	knownNames []string
	resolver   NameResolver
}

const knownNamesTestData = "\ufeff武汉\n黄冈\n\n恩施土家族苗族自治州\n  孝感 \n十堰\n"

func NewResolverTestSuite() *ResolverTestSuite {
	return &ResolverTestSuite{}
}

func (s *ResolverTestSuite) SetupSuite() {
	names, err := ReadKnownNames(strings.NewReader(knownNamesTestData))
	s.Require().NoError(err)
	s.knownNames = names
	s.resolver = NewCityNameResolver(names)
}

func (s *ResolverTestSuite) TestReadKnownNames() {
	s.Equal([]string{"武汉", "黄冈", "恩施土家族苗族自治州", "孝感", "十堰"}, s.knownNames)
}

func (s *ResolverTestSuite) TestEveryTableNameResolvesToTarget() {
	for name, target := range consts.CityMapNames() {
		actual, err := s.resolver.Resolve(name)
		s.NoError(err, name)
		s.Equal(target, actual, name)
	}
}

func (s *ResolverTestSuite) TestDistrictKeepsName() {
	actual, err := s.resolver.Resolve("浦东新区")
	s.NoError(err)
	s.Equal("浦东新区", actual)
}

func (s *ResolverTestSuite) TestKnownNameExactGetsCitySuffix() {
	actual, err := s.resolver.Resolve("武汉")
	s.NoError(err)
	s.Equal("武汉市", actual)
}

func (s *ResolverTestSuite) TestKnownNamePartial() {
	resolver := NewKnownNameResolver([]string{"武汉", "恩施土家族苗族自治州"})
	actual, err := resolver.Resolve("恩施")
	s.NoError(err)
	s.Equal("恩施土家族苗族自治州", actual)
}

func (s *ResolverTestSuite) TestKnownNameFirstMatchWins() {
	resolver := NewKnownNameResolver([]string{"十堰", "十堰市"})
	actual, err := resolver.Resolve("十堰")
	s.NoError(err)
	s.Equal("十堰市", actual)

	resolver = NewKnownNameResolver([]string{"十堰市", "十堰"})
	actual, err = resolver.Resolve("十堰")
	s.NoError(err)
	s.Equal("十堰市", actual)
}

func (s *ResolverTestSuite) TestDuplicateRunesDoNotMatch() {
	resolver := NewKnownNameResolver([]string{"大大"})
	_, err := resolver.Resolve("大大")
	s.Equal(ErrNoKnownName, err)
}

func (s *ResolverTestSuite) TestFullWidthInputIsNormalized() {
	actual, err := s.resolver.Resolve(" 武汉　")
	s.NoError(err)
	s.Equal("武汉市", actual)
}

func (s *ResolverTestSuite) TestUnknownNameFallsThroughWithoutPanic() {
	var actual string
	var err error
	s.NotPanics(func() {
		actual, err = s.resolver.Resolve("外地来鄂")
	})
	s.Equal("", actual)

	var multiple *MultipleResolverErrors
	s.True(errors.As(err, &multiple))
	s.Equal([]error{ErrNotInTable, ErrSuffixNotMatch, ErrNoKnownName}, multiple.Errors())
	s.Contains(err.Error(), "外地来鄂")
}

func (s *ResolverTestSuite) TestEmptyName() {
	_, err := s.resolver.Resolve("  ")
	s.Equal(ErrEmptyName, err)

	_, err = NewKnownNameResolver(s.knownNames).Resolve("")
	s.Equal(ErrEmptyName, err)
}

func (s *ResolverTestSuite) TestNoResolver() {
	_, err := NewMultipleNameResolver().Resolve("武汉")
	s.Equal(ErrNoResolverFound, err)
}

func (s *ResolverTestSuite) TestLoadKnownNamesMissingFile() {
	_, err := LoadKnownNames("testdata/not-exist.txt")
	s.Error(err)
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, NewResolverTestSuite())
}
