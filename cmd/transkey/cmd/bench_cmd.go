package cmd

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/OhanaFS/transkey"
)

var (
	flagThreads = &cli.IntFlag{
		Name:  "threads",
		Value: 1,
		Usage: "number of concurrent workers",
	}
	flagIterations = &cli.IntFlag{
		Name:  "iterations",
		Value: 4,
		Usage: "encrypt/decrypt round trips per worker",
	}
)

var benchCmd = &cli.Command{
	Name:  "bench",
	Usage: "measure the cost of PIN stretching on this machine",
	Flags: []cli.Flag{flagThreads, flagIterations},
	Action: func(cCtx *cli.Context) error {
		codec, err := newCodec(cCtx)
		if err != nil {
			return err
		}
		threads := cCtx.Int(flagThreads.Name)
		iterations := cCtx.Int(flagIterations.Name)
		if threads < 1 || iterations < 1 {
			return fmt.Errorf("threads and iterations must be positive")
		}

		log.Printf("Running benchmark with %d threads and %d iterations", threads, iterations)

		runBench := func() (time.Duration, error) {
			secret := make([]byte, transkey.SecretSize)
			if _, err := rand.Read(secret); err != nil {
				return 0, err
			}

			startTime := time.Now()
			for i := 0; i < iterations; i++ {
				key, err := codec.Encrypt(secret, "0000")
				if err != nil {
					return 0, err
				}
				out, err := codec.Decrypt(key, "0000")
				if err != nil {
					return 0, err
				}
				if !bytes.Equal(out, secret) {
					return 0, fmt.Errorf("round trip mismatch")
				}
			}
			return time.Since(startTime), nil
		}

		// Run the benchmark for each thread
		var durations []time.Duration
		var lock sync.Mutex
		var wg sync.WaitGroup
		for i := 0; i < threads; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				duration, err := runBench()
				if err != nil {
					log.Printf("Error running benchmark: %v", err)
					return
				}
				lock.Lock()
				durations = append(durations, duration)
				lock.Unlock()
			}()
		}

		// Wait for all the threads to finish
		wg.Wait()
		if len(durations) == 0 {
			return fmt.Errorf("every benchmark worker failed")
		}

		// Report the results
		var totalDuration time.Duration
		for _, duration := range durations {
			totalDuration += duration
		}
		averageDuration := totalDuration / time.Duration(len(durations))

		// Each round trip stretches the PIN twice.
		perOp := averageDuration / time.Duration(2*iterations)
		opsPerSec := float64(2*iterations*len(durations)) / averageDuration.Seconds()
		fmt.Fprintf(cCtx.App.Writer, "Average duration: %v, per operation: %v, %.1f ops/s\n",
			averageDuration, perOp, opsPerSec)
		return nil
	},
}
