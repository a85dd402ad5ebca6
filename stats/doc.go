// Package stats はピアソン相関係数と決定係数（r²）を計算する統計エンジンです。
//
// 計算の流れ:
//
//	Dataset → Means → CorrelationMatrix → Rank（参照変数に対するr²と最大・最小）
//
// すべての関数は入力だけに依存する純粋な計算で、同じ入力に対して常に
// ビット単位で同一の結果を返します。分散ゼロの変数（退化変数）との相関は
// NaNとして伝播し、0や1に丸められることはありません。
//
// 使用例:
//
//	ds, err := stats.NewDataset([]string{"x1", "x2"}, [][]float64{{1, 2, 3}, {2, 4, 7}})
//	if err != nil {
//	    return err
//	}
//	res, err := stats.Analyze(ds, 0)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Ranking.Most.Label, res.Ranking.Most.R2)
package stats
