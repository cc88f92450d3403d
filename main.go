package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/golang/glog"
	"golang.org/x/exp/rand"

	"github.com/bn96/godm/codec"
	"github.com/bn96/godm/corpus"
	"github.com/bn96/godm/model"
)

var (
	input     = flag.String("input_file", "", "input event count file")
	modelFile = flag.String("model_file", "model.bin", "output model file")
	priorFile = flag.String("prior", "", "YAML prior configuration file")
	alpha     = flag.Float64("alpha", 0.0, "symmetric prior pseudo-count")
	events    = flag.Uint64("events", 0, "symmetric prior universe size")
	samples   = flag.Int("samples", 0, "number of events to sample")
	seed      = flag.Uint64("seed", 0, "sampling seed, 0 for time based")
)

func main() {
	flag.Parse()

	// build the prior, either from a YAML spec or from the
	// symmetric flags
	var prior *model.Dirichlet[string]
	if *priorFile != "" {
		p, err := model.LoadPriorConfig(*priorFile)
		if err != nil {
			log.Fatalf("loading prior config: %v", err)
		}
		prior = p
	} else {
		prior = model.NewSymmetricDirichlet[string](*alpha, *events)
	}

	// count the observed events
	m, err := corpus.LoadCounts(*input, prior)
	if err != nil {
		log.Fatalf("loading counts: %v", err)
	}

	if *samples > 0 {
		if *seed == 0 {
			*seed = uint64(time.Now().UnixNano())
		}
		src := rand.NewSource(*seed)
		for i := 0; i < *samples; i += 1 {
			ev, err := m.Sample(src)
			if err != nil {
				log.Fatalf("sampling: %v", err)
			}
			p, err := m.Probability(ev)
			if err != nil {
				log.Fatalf("probability of %s: %v", ev, err)
			}
			fmt.Printf("%s\t%f\n", ev, p)
		}
	}

	out, err := os.OpenFile(*modelFile, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, os.ModePerm)
	if err != nil {
		log.Fatalf("creating model file: %v", err)
	}
	defer out.Close()

	if err := m.Save(out, codec.StringEvent{}); err != nil {
		log.Fatalf("saving model: %v", err)
	}
}
