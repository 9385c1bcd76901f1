package mmapcsv_test

import (
	"fmt"

	"github.com/oleg578/mmapcsv"
)

func ExampleParse() {
	r, err := mmapcsv.Parse([]byte("name,age\nalice,30\nbob,25\n"), mmapcsv.DefaultDialect())
	if err != nil {
		fmt.Println(err)
		return
	}
	defer r.Close()

	fmt.Println(r.Header()[0].Values(), r.Size())
	for _, row := range r.All() {
		fmt.Println(row.Line(), row.Values())
	}
	// Output:
	// [name age] 2
	// 1 [alice 30]
	// 2 [bob 25]
}

func ExampleReader_Seek() {
	r, _ := mmapcsv.Parse([]byte("id\n1\n2\n3\n4\n"), mmapcsv.DefaultDialect())

	it := r.Seek(3)
	fmt.Println(it.Row().String())
	it.Prev()
	fmt.Println(it.Row().String())
	fmt.Println(r.At(-1).String(), r.At(99).String())
	// Output:
	// 4
	// 3
	// 1 4
}

func ExampleReader_Backward() {
	r, _ := mmapcsv.Parse([]byte("g1:a,g1:b\ng2:c\ng1:1,2\ng2:3\n"), mmapcsv.DefaultDialect())

	fmt.Println(len(r.Header()), r.Cols())
	for i, row := range r.Backward() {
		fmt.Println(i, row.String())
	}
	// Output:
	// 2 2
	// 1 g2:3
	// 0 g1:1,2
}
