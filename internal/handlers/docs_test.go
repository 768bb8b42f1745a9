package handlers_test

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/SscSPs/erp_ledger/cmd/docs"
)

var ginParam = regexp.MustCompile(`:([A-Za-z]+)`)

// Every API route must be described in the generated swagger document and
// the document must not describe routes that are gone.
func (suite *HandlerTestSuite) TestSwaggerDocCoversRoutes() {
	var doc struct {
		BasePath string                     `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	suite.Require().NoError(json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))
	suite.Equal("/api/v1", doc.BasePath)

	var documented []string
	for path, ops := range doc.Paths {
		for method := range ops {
			documented = append(documented, strings.ToUpper(method)+" "+path)
		}
	}

	var routed []string
	for _, route := range suite.router.Routes() {
		if !strings.HasPrefix(route.Path, doc.BasePath+"/") {
			continue
		}
		path := ginParam.ReplaceAllString(strings.TrimPrefix(route.Path, doc.BasePath), "{$1}")
		routed = append(routed, route.Method+" "+path)
	}

	sort.Strings(documented)
	sort.Strings(routed)
	suite.Equal(routed, documented)
}
