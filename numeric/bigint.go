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

package numeric

import (
	"math/big"
)

// Width limits, computed once. maxFor(n) = 2^n - 1
func maxFor(bits uint) *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), bits)
	return max.Sub(max, big.NewInt(1))
}

var (
	maxU128 = maxFor(128)
	maxU256 = maxFor(256)
	maxU512 = maxFor(512)
)

// checkedFromBig validates that b fits the width and returns a defensive copy
func checkedFromBig(typ string, b *big.Int, max *big.Int) (big.Int, error) {
	var out big.Int
	if b == nil {
		return out, nil
	}
	if b.Sign() < 0 || b.Cmp(max) > 0 {
		return out, newArithmeticError(typ, "from big", ErrOutOfRange)
	}
	out.Set(b)
	return out, nil
}

func checkedAdd(typ string, a, b, max *big.Int) (big.Int, error) {
	var out big.Int
	out.Add(a, b)
	if out.Cmp(max) > 0 {
		return big.Int{}, newArithmeticError(typ, "add", ErrOverflow)
	}
	return out, nil
}

func checkedSub(typ string, a, b *big.Int) (big.Int, error) {
	var out big.Int
	if a.Cmp(b) < 0 {
		return out, newArithmeticError(typ, "sub", ErrUnderflow)
	}
	out.Sub(a, b)
	return out, nil
}

func checkedMul(typ string, a, b, max *big.Int) (big.Int, error) {
	var out big.Int
	out.Mul(a, b)
	if out.Cmp(max) > 0 {
		return big.Int{}, newArithmeticError(typ, "mul", ErrOverflow)
	}
	return out, nil
}

func checkedDiv(typ string, a, b *big.Int) (big.Int, error) {
	var out big.Int
	if b.Sign() == 0 {
		return out, newArithmeticError(typ, "div", ErrDivideByZero)
	}
	out.Div(a, b)
	return out, nil
}
