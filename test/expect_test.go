// This file is part of gbheader.
//
// gbheader is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbheader is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbheader.  If not, see <https://www.gnu.org/licenses/>.

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gbheader/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectEquality(t, [2]uint16{1, 2}, [2]uint16{1, 2})
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestWriter(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectSuccess(t, tw.Compare(""))

	_, _ = tw.Write([]byte("hello"))
	_, _ = tw.Write([]byte(" world"))
	test.ExpectSuccess(t, tw.Compare("hello world"))
	test.ExpectEquality(t, tw.String(), "hello world")

	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestMakeROM(t *testing.T) {
	d := test.MakeROM(0, "ABC", map[int]byte{0x200: 0xff})
	test.DemandEquality(t, len(d), test.MinROMSize)

	// 'A' + 'B' + 'C' == 0xc6. the patch is outside of the data
	test.ExpectEquality(t, d[0x14e], 0x00)
	test.ExpectEquality(t, d[0x14f], 0xc6)

	d = test.MakeROM(0x8000, "ABC", map[int]byte{0x200: 0xff, 0x7fff: 0xff})
	test.DemandEquality(t, len(d), 0x8000)
	test.ExpectEquality(t, d[0x14e], 0x02)
	test.ExpectEquality(t, d[0x14f], 0xc4)

	// title is truncated to fifteen bytes
	d = test.MakeROM(0, "ABCDEFGHIJKLMNOPQRST", nil)
	test.ExpectEquality(t, d[0x142], 'O')
	test.ExpectEquality(t, d[0x143], 0x00)
}
