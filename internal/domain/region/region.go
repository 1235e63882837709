// Package region decides whether a free-text Korean address falls inside the
// supported service area.
package region

import (
	"sort"
	"strings"
	"unicode"

	"github.com/paulmach/orb"
	"golang.org/x/text/unicode/norm"
)

// City is a first-level administrative region label.
type City string

const (
	CityUnknown   City = "Unknown"
	CitySeoul     City = "Seoul"
	CityIncheon   City = "Incheon"
	CityGyeonggi  City = "Gyeonggi"
	CityBusan     City = "Busan"
	CityDaegu     City = "Daegu"
	CityGwangju   City = "Gwangju"
	CityDaejeon   City = "Daejeon"
	CityUlsan     City = "Ulsan"
	CitySejong    City = "Sejong"
	CityGangwon   City = "Gangwon"
	CityChungbuk  City = "Chungbuk"
	CityChungnam  City = "Chungnam"
	CityJeonbuk   City = "Jeonbuk"
	CityJeonnam   City = "Jeonnam"
	CityGyeongbuk City = "Gyeongbuk"
	CityGyeongnam City = "Gyeongnam"
	CityJeju      City = "Jeju"
)

// supported is the allow-list of cities reviews are accepted from.
var supported = map[City]orb.Bound{
	CitySeoul:    {Min: orb.Point{126.76, 37.41}, Max: orb.Point{127.19, 37.72}},
	CityIncheon:  {Min: orb.Point{124.60, 37.00}, Max: orb.Point{126.80, 37.99}},
	CityGyeonggi: {Min: orb.Point{126.37, 36.89}, Max: orb.Point{127.86, 38.30}},
}

// aliases maps a normalized token to its city. Korean forms are also matched
// as prefixes of the space-less address.
var aliases = map[string]City{
	"서울": CitySeoul, "서울시": CitySeoul, "서울특별시": CitySeoul,
	"seoul": CitySeoul, "seoulsi": CitySeoul,
	"인천": CityIncheon, "인천시": CityIncheon, "인천광역시": CityIncheon,
	"incheon": CityIncheon, "incheonsi": CityIncheon,
	"경기": CityGyeonggi, "경기도": CityGyeonggi,
	"gyeonggi": CityGyeonggi, "gyeonggido": CityGyeonggi, "kyeonggi": CityGyeonggi, "kyonggido": CityGyeonggi,

	"부산": CityBusan, "부산광역시": CityBusan, "busan": CityBusan,
	"대구": CityDaegu, "대구광역시": CityDaegu, "daegu": CityDaegu,
	"광주": CityGwangju, "광주광역시": CityGwangju, "gwangju": CityGwangju,
	"대전": CityDaejeon, "대전광역시": CityDaejeon, "daejeon": CityDaejeon,
	"울산": CityUlsan, "울산광역시": CityUlsan, "ulsan": CityUlsan,
	"세종": CitySejong, "세종특별자치시": CitySejong, "sejong": CitySejong,
	"강원": CityGangwon, "강원도": CityGangwon, "강원특별자치도": CityGangwon, "gangwon": CityGangwon, "gangwondo": CityGangwon,
	"충북": CityChungbuk, "충청북도": CityChungbuk, "chungcheongbukdo": CityChungbuk,
	"충남": CityChungnam, "충청남도": CityChungnam, "chungcheongnamdo": CityChungnam,
	"전북": CityJeonbuk, "전라북도": CityJeonbuk, "전북특별자치도": CityJeonbuk, "jeollabukdo": CityJeonbuk,
	"전남": CityJeonnam, "전라남도": CityJeonnam, "jeollanamdo": CityJeonnam,
	"경북": CityGyeongbuk, "경상북도": CityGyeongbuk, "gyeongsangbukdo": CityGyeongbuk,
	"경남": CityGyeongnam, "경상남도": CityGyeongnam, "gyeongsangnamdo": CityGyeongnam,
	"제주": CityJeju, "제주도": CityJeju, "제주특별자치도": CityJeju, "jeju": CityJeju, "jejudo": CityJeju,
}

// provinceSuffixes complete a short Hangul alias, longest first.
var provinceSuffixes = []string{"특별자치시", "특별자치도", "특별시", "광역시", "시", "도"}

// koreanPrefixes holds the Hangul aliases, longest first.
var koreanPrefixes = func() []string {
	prefixes := make([]string, 0, len(aliases))
	for alias := range aliases {
		if isHangul(alias) {
			prefixes = append(prefixes, alias)
		}
	}
	sort.Slice(prefixes, func(i, j int) bool {
		if len(prefixes[i]) != len(prefixes[j]) {
			return len(prefixes[i]) > len(prefixes[j])
		}

		return prefixes[i] < prefixes[j]
	})

	return prefixes
}()

// ExtractCity finds the first-level region named in address.
// It never fails: an address without a known region token yields CityUnknown.
func ExtractCity(address string) City {
	folded := strings.ToLower(norm.NFKC.String(address))

	for _, token := range tokenize(folded) {
		// "(04524)서울특별시" and "135-080" carry the postal code in front.
		token = strings.TrimLeftFunc(token, unicode.IsDigit)
		if token == "" {
			continue
		}

		if city, ok := aliases[token]; ok {
			return city
		}

		// "서울특별시중구" and "서울마포구" glue the district onto the region.
		for _, prefix := range koreanPrefixes {
			if strings.HasPrefix(token, prefix) && isRegionRemainder(strings.TrimPrefix(token, prefix)) {
				return aliases[prefix]
			}
		}
	}

	return CityUnknown
}

// IsWithinBoundary reports whether reviews are accepted from city.
func IsWithinBoundary(city City) bool {
	_, ok := supported[city]

	return ok
}

// Contains reports whether a coordinate lies inside the bounding box of a
// supported city. Unsupported cities contain nothing.
func Contains(city City, latitude, longitude float64) bool {
	bound, ok := supported[city]
	if !ok {
		return false
	}

	return bound.Contains(orb.Point{longitude, latitude})
}

// Supported lists the allow-listed cities.
func Supported() []City {
	cities := make([]City, 0, len(supported))
	for city := range supported {
		cities = append(cities, city)
	}
	sort.Slice(cities, func(i, j int) bool { return cities[i] < cities[j] })

	return cities
}

// tokenize splits on whitespace and separators, dropping punctuation inside tokens
// so "gyeonggi-do," becomes "gyeonggido".
func tokenize(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '/' || r == '(' || r == ')'
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		var b strings.Builder
		for _, r := range field {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
		}
	}

	return tokens
}

// isRegionRemainder reports whether rest, the part of a token after a region
// alias, is a province suffix and/or a district. Road names such as
// "세종대로" or "경기장로" are not.
func isRegionRemainder(rest string) bool {
	if rest == "" || startsWithDistrict(rest) {
		return true
	}

	for _, suffix := range provinceSuffixes {
		if after, ok := strings.CutPrefix(rest, suffix); ok && (after == "" || startsWithDistrict(after)) {
			return true
		}
	}

	return false
}

// startsWithDistrict reports whether s opens with a 2 to 5 rune name ending in 구, 군 or 시.
func startsWithDistrict(s string) bool {
	runes := []rune(s)
	for i := 1; i < len(runes) && i < 5; i++ {
		switch runes[i] {
		case '구', '군', '시':
			return true
		}
	}

	return false
}

func isHangul(s string) bool {
	for _, r := range s {
		if !unicode.Is(unicode.Hangul, r) {
			return false
		}
	}

	return s != ""
}
