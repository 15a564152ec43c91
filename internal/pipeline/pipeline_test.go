package pipeline

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"isgmotif-core/fasta"
	"isgmotif-core/isre"
)

func corpus(n int) []fasta.Record {
	seqs := []string{"AGTTTCAATTTC", "CCGAAATTGAAACTCC", "ACGT", "AGTTTCAATTTA", "CCCCCCCCCCCCCC"}
	recs := make([]fasta.Record, n)
	for i := range recs {
		recs[i] = fasta.Record{ID: fmt.Sprintf("g%d", i), Seq: seqs[i%len(seqs)]}
	}
	return recs
}

func TestScanRecordsMatchesSerialScan(t *testing.T) {
	recs := corpus(57)
	want := make([]isre.Hit, len(recs))
	for i, r := range recs {
		want[i] = isre.ISRE.Scan(r.ID, r.Seq)
	}
	for _, threads := range []int{0, 1, 3, 16} {
		var seen int
		got, err := ScanRecords(context.Background(), Config{Threads: threads, Pattern: isre.ISRE}, recs,
			func(isre.Hit) { seen++ })
		if err != nil {
			t.Fatalf("threads=%d: %v", threads, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("threads=%d: order or content differs", threads)
		}
		if seen != len(recs) {
			t.Fatalf("threads=%d: visit called %d times", threads, seen)
		}
	}
}

func TestScanRecordsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ScanRecords(ctx, Config{Threads: 2, Pattern: isre.ISRE}, corpus(1000), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestScanRecordsEmpty(t *testing.T) {
	got, err := ScanRecords(context.Background(), Config{Threads: 4, Pattern: isre.ISRE}, nil, nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("got %v, %v", got, err)
	}
}
