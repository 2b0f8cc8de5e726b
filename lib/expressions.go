package lib

import (
	"io/ioutil"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const expressionFileExt = ".calc"

// ReadExpressionsDir loads every *.calc file in dir as a case with no
// expectation, named after the file and sorted by name.
func ReadExpressionsDir(dir string) ([]Case, error) {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	cases := []Case{}
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), expressionFileExt) {
			continue
		}

		filePath := path.Join(dir, file.Name())
		bytes, err := ioutil.ReadFile(filePath)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to read expression %s", filePath)
		}

		cases = append(cases, Case{
			Name:       caseNameFromPath(filePath),
			Expression: strings.TrimSpace(string(bytes)),
		})
	}

	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})
	return cases, nil
}

func caseNameFromPath(filePath string) string {
	_, fileName := path.Split(filePath)
	return strings.TrimSuffix(fileName, expressionFileExt)
}
