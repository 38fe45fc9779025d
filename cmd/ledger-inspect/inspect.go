// Copyright 2025 Ironbark Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/ironbark-io/ledgercore/codec"
	"github.com/ironbark-io/ledgercore/crypto"
	"github.com/ironbark-io/ledgercore/key"
	"github.com/ironbark-io/ledgercore/value"
	"github.com/rs/zerolog"
)

// inspectKey parses a global-state key in either text or hex wire form and
// prints its variant and both renderings
func inspectKey(f *globalFlags, cfg toolConfig, logger zerolog.Logger) {
	arg := requireArg(f, "key text (e.g. hash-<hex>) or hex wire bytes")
	k, err := key.Parse(arg)
	if err != nil {
		logger.Debug().
			Err(err).
			Msg("text parse failed, trying wire form")
		data, hexErr := hex.DecodeString(arg)
		if hexErr != nil {
			logger.Error().Err(err).Msg("unable to parse key")
			os.Exit(1)
		}
		r := codec.NewReader(data)
		k, err = key.ReadKey(r)
		if err == nil {
			err = r.Finish()
		}
		if err != nil {
			logger.Error().Err(err).Msg("unable to decode key wire bytes")
			os.Exit(1)
		}
	}

	out := map[string]any{
		"variant": k.Tag().String(),
		"text":    k.String(),
		"wire":    hex.EncodeToString(k.Bytes()),
	}
	if account, ok := k.Account(); ok {
		out["bech32"] = account.Bech32(cfg.bech32Prefix)
	}
	emit(f, out)
}

// inspectAccount parses a tagged public key, verifies it is well formed,
// and prints the account identity it controls
func inspectAccount(f *globalFlags, cfg toolConfig, logger zerolog.Logger) {
	arg := requireArg(f, "public key in tagged hex form")
	pk, err := crypto.ParsePublicKey(arg)
	if err != nil {
		logger.Error().Err(err).Msg("unable to parse public key")
		os.Exit(1)
	}
	account := pk.AccountHash()
	emit(f, map[string]any{
		"algorithm":    pk.Algorithm().String(),
		"public_key":   pk.String(),
		"account_hash": account.String(),
		"bech32":       account.Bech32(cfg.bech32Prefix),
		"key":          pk.AccountKey().String(),
	})
}

// inspectValue decodes a wire-encoded dynamic value and prints its type
// descriptor and payload
func inspectValue(f *globalFlags, _ toolConfig, logger zerolog.Logger) {
	arg := requireArg(f, "hex wire bytes of an encoded value")
	data, err := hex.DecodeString(arg)
	if err != nil {
		logger.Error().Err(err).Msg("argument is not valid hex")
		os.Exit(1)
	}
	r := codec.NewReader(data)
	v, err := value.ReadValue(r)
	if err == nil {
		err = r.Finish()
	}
	if err != nil {
		logger.Error().Err(err).Msg("unable to decode value")
		os.Exit(1)
	}
	out := map[string]any{
		"type":    v.Type().String(),
		"payload": hex.EncodeToString(v.PayloadBytes()),
	}
	if v.Type().ContainsAny() {
		out["opaque"] = true
	}
	emit(f, out)
}

// inspectDigest prints the blake2b-256 digest of the argument bytes
func inspectDigest(f *globalFlags, _ toolConfig, logger zerolog.Logger) {
	arg := requireArg(f, "hex bytes to digest")
	data, err := hex.DecodeString(arg)
	if err != nil {
		logger.Error().Err(err).Msg("argument is not valid hex")
		os.Exit(1)
	}
	digest := crypto.Blake2b256Hash(data)
	emit(f, map[string]any{
		"blake2b256": hex.EncodeToString(digest[:]),
	})
}

func requireArg(f *globalFlags, what string) string {
	if len(f.flagset.Args()) < 2 {
		fmt.Printf("You must specify %s\n", what)
		os.Exit(1)
	}
	return f.flagset.Arg(1)
}

func emit(f *globalFlags, out map[string]any) {
	if f.jsonOut {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			fmt.Printf("failed to render output: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s\n", data)
		return
	}
	names := make([]string, 0, len(out))
	for k := range out {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Printf("%s: %v\n", k, out[k])
	}
}
