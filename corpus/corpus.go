package corpus

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/cheggaaa/pb/v3"
	log "github.com/golang/glog"

	"github.com/bn96/godm/model"
)

// LoadCounts reads observed event counts from file, the file format
// should be like:
// [event:count event:count ... event:count]
// one or more records per line, and accumulates them into a counter
// owning a copy of the given prior. Malformed records are logged and
// skipped.
func LoadCounts(fn string, prior *model.Dirichlet[string]) (*model.Multinomial[string], error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		records = append(records, strings.Fields(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	m := model.NewMultinomialWithPrior(prior)

	bar := pb.StartNew(len(records))
	loaded := 0
	for _, record := range records {
		bar.Add(1)

		ec := strings.Split(record, ":")
		if len(ec) != 2 || ec[0] == "" {
			log.Warningf("bad event count: %s", record)
			continue
		}
		count, err := strconv.ParseFloat(ec[1], 64)
		if err != nil {
			log.Warningf("bad event count: %s", record)
			continue
		}

		m.Incr(ec[0], count)
		loaded += 1
	}
	bar.Finish()

	log.Infof("number of records %d", loaded)
	log.Infof("number of distinct events %d", distinctEvents(m))

	return m, nil
}

func distinctEvents(m *model.Multinomial[string]) int {
	n := 0
	m.EachSeenEvent(func(string) {
		n += 1
	})
	return n
}
