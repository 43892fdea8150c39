package fred

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"econ_backend/internal/feature/indicators/domain/entity"
	"econ_backend/internal/feature/indicators/usecase"
	"econ_backend/internal/platform/externalapi/fred/dto"
)

// FredSeries はFRED外部APIから経済指標の時系列を取得するSeriesSource実装です。
type FredSeries struct {
	cfg    Config
	client *http.Client
}

// FredSeriesがSeriesSourceを実装していることをコンパイル時に検証します。
var _ usecase.SeriesSource = (*FredSeries)(nil)

// NewFredSeries は指定された設定とHTTPクライアントでFredSeriesの新しいインスタンスを生成します。
func NewFredSeries(cfg Config, client *http.Client) *FredSeries {
	return &FredSeries{cfg: cfg, client: client}
}

// FetchSeries は指定された系列IDと期間の観測値をFRED APIから取得し、
// 順序付き数値系列（最新が末尾）として返します。
//
// APIキーが未設定の場合はネットワークに出ずに空の結果を返します。
// 空の結果は「系列なし」であって「値0」と同義ではありません。
func (f *FredSeries) FetchSeries(ctx context.Context, seriesID string, start, end time.Time) (entity.RawSeries, error) {
	if f.cfg.FredAPIKey == "" {
		slog.Debug("FRED API key not set, skipping fetch", "series_id", seriesID)
		return entity.RawSeries{Kind: entity.KindSeries}, nil
	}

	q := url.Values{}
	// クエリパラメータを追加
	q.Set("series_id", seriesID)
	q.Set("observation_start", start.Format("2006-01-02"))
	q.Set("observation_end", end.Format("2006-01-02"))
	q.Set("file_type", "json")
	q.Set("api_key", f.cfg.FredAPIKey)

	// URLを生成
	u := fmt.Sprintf("%s/series/observations?%s", f.cfg.BaseURL, q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.RawSeries{}, err
	}

	// リクエストを実行
	res, err := f.client.Do(req)
	if err != nil {
		return entity.RawSeries{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return entity.RawSeries{}, fmt.Errorf("fred http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.ObservationsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.RawSeries{}, err
	}
	if body.ErrorMessage != "" {
		return entity.RawSeries{}, fmt.Errorf("fred: %s", body.ErrorMessage)
	}

	points := make([]entity.RawPoint, 0, len(body.Observations))
	for _, o := range body.Observations {
		// FREDは欠測値を "." で表現するため、数値にならない観測は読み飛ばす
		v, err := strconv.ParseFloat(o.Value, 64)
		if err != nil {
			continue
		}
		vv := v
		points = append(points, entity.RawPoint{Date: o.Date, Value: &vv})
	}

	return entity.RawSeries{Kind: entity.KindSeries, Points: points}, nil
}
