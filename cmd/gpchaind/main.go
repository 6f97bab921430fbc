// Copyright (c) 2017 The GreenPower developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// gpchaind applies batches of license operations against a persisted
// GreenPower license state.  It exists for operators and integration
// tests; block production and networking live elsewhere.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/powerchain-ltd/greenpower-blockchain/chain"
	"github.com/powerchain-ltd/greenpower-blockchain/chain/chaindb"
)

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}

func realMain() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	defer logRotator.Close()
	setLogLevels(cfg.DebugLevel)

	db, err := chaindb.Open(filepath.Join(cfg.DataDir, "chaindb"))
	if err != nil {
		gpcdLog.Errorf("Failed to open chain database: %v", err)
		return err
	}
	defer db.Close()

	config := &chain.Config{ChainParams: cfg.netParams()}
	state, err := db.LoadState(config)
	if err != nil {
		// An empty database means a fresh chain.
		gpcdLog.Infof("No usable state found, starting from "+
			"genesis: %v", err)
		state, err = chain.New(config)
		if err != nil {
			gpcdLog.Errorf("Failed to initialize state: %v", err)
			return err
		}
	}
	state.SetHeadBlockTime(time.Now().UTC())

	if cfg.OpsFile != "" {
		if err := applyBatch(state, cfg.OpsFile); err != nil {
			return err
		}
		if err := db.SaveState(state); err != nil {
			gpcdLog.Errorf("Failed to persist state: %v", err)
			return err
		}
	}

	if cfg.ShowState {
		printStateSummary(state)
	}
	return nil
}

// applyBatch reads the batch file and applies each entry as one atomic
// transaction.  A rejected transaction is reported and skipped; the
// remaining entries still run, mirroring how a chain drops an invalid
// transaction without invalidating its block's siblings.
func applyBatch(state *chain.State, path string) error {
	txns, err := readTransactions(path)
	if err != nil {
		gpcdLog.Errorf("Failed to read batch file: %v", err)
		return err
	}

	var applied, rejected int
	for i, jtx := range txns {
		for _, ja := range jtx.Accounts {
			kind := chain.AccountWallet
			if ja.Vault {
				kind = chain.AccountVault
			}
			acc := state.CreateAccount(ja.Name, kind)
			gpcdLog.Infof("Registered account '%s' (%d)", acc.Name,
				acc.ID)
		}

		tx := &chain.Transaction{}
		decodeFailed := false
		for _, raw := range jtx.Operations {
			op, err := decodeOperation(raw)
			if err != nil {
				gpcdLog.Errorf("Transaction %d: %v", i, err)
				decodeFailed = true
				break
			}
			tx.Operations = append(tx.Operations, op)
		}
		if decodeFailed {
			rejected++
			continue
		}

		results, err := state.ProcessTransaction(tx)
		if err != nil {
			if _, ok := err.(chain.RuleError); ok {
				gpcdLog.Warnf("Rejected transaction %d: %v", i,
					err)
				rejected++
				continue
			}
			gpcdLog.Criticalf("Transaction %d failed outside the "+
				"rule set: %v", i, err)
			return err
		}
		gpcdLog.Infof("Applied transaction %d: %d operations, "+
			"results %v", i, len(tx.Operations), results)
		applied++
	}

	gpcdLog.Infof("Batch complete: %d applied, %d rejected", applied,
		rejected)
	return nil
}

// printStateSummary writes a human-readable dump of the license state to
// standard output.
func printStateSummary(state *chain.State) {
	accounts, licenseTypes, licenseInfo := state.ExportRecords()

	fmt.Printf("chain: %s\n", state.ChainParams().Name)
	fmt.Printf("license types (%d):\n", len(licenseTypes))
	for _, lt := range licenseTypes {
		fmt.Printf("  %4d %-20s kind=%-16v amount=%d eur_limit=%d\n",
			lt.ID, lt.Name, lt.Kind, lt.Amount, lt.EurLimit)
	}
	fmt.Printf("accounts (%d):\n", len(accounts))
	for _, acc := range accounts {
		fmt.Printf("  %4d %-20s kind=%-6v cycles=%d limit=%d\n",
			acc.ID, acc.Name, acc.Kind, acc.Cycles,
			acc.DascoinLimit)
	}
	fmt.Printf("license information (%d):\n", len(licenseInfo))
	for _, li := range licenseInfo {
		fmt.Printf("  %4d account=%d kind=%v grants=%d max=%d "+
			"upgrades=%d/%d/%d\n", li.ID, li.Account,
			li.VaultLicenseKind, len(li.History), li.MaxLicense,
			li.BalanceUpgrade, li.RequeueUpgrade, li.ReturnUpgrade)
	}
}
