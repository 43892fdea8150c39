package worldbank

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
	"econ_backend/internal/platform/externalapi/worldbank/dto"
)

// WorldBankPoints は世界銀行APIから(国, 指標)の観測リストを取得する
// PointSource実装です。レスポンスはプロバイダの並び順（最新が先頭）の
// {date, value}レコードで、値はnullを含むことがあります。
type WorldBankPoints struct {
	cfg    Config
	client *http.Client
	now    func() time.Time
}

// WorldBankPointsがPointSourceを実装していることをコンパイル時に検証します。
var _ usecase.PointSource = (*WorldBankPoints)(nil)

// NewWorldBankPoints は指定された設定とHTTPクライアントでWorldBankPointsの新しいインスタンスを生成します。
func NewWorldBankPoints(cfg Config, client *http.Client) *WorldBankPoints {
	return &WorldBankPoints{cfg: cfg, client: client, now: time.Now}
}

// FetchPoints は指定された国コードと指標コードの観測リストを取得します。
// 成功は200ステータスのみで、レスポンスは [メタデータ, レコード配列] の
// 2要素JSON配列です。レコード配列が無い応答（エラーメッセージのみ等）は
// データなしとして空の結果になります。
func (w *WorldBankPoints) FetchPoints(ctx context.Context, countryCode, indicatorCode string) (entity.RawSeries, error) {
	q := url.Values{}
	// クエリパラメータを追加
	q.Set("format", "json")
	q.Set("per_page", strconv.Itoa(w.cfg.PerPage))
	year := w.now().Year()
	q.Set("date", fmt.Sprintf("%d:%d", year-w.cfg.YearsBack, year))

	// URLを生成
	u := fmt.Sprintf("%s/country/%s/indicator/%s?%s",
		w.cfg.BaseURL, url.PathEscape(countryCode), url.PathEscape(indicatorCode), q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.RawSeries{}, err
	}

	// リクエストを実行
	res, err := w.client.Do(req)
	if err != nil {
		return entity.RawSeries{}, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return entity.RawSeries{}, fmt.Errorf("worldbank http %d", res.StatusCode)
	}

	// 外側の配列を要素単位でデコードし、2要素目のレコード配列だけを使う
	var body []json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.RawSeries{}, fmt.Errorf("worldbank: decode payload: %w", err)
	}
	if len(body) < 2 {
		// メタデータのみの応答（未知の指標コードなど）はデータなし扱い
		return entity.RawSeries{Kind: entity.KindPoints}, nil
	}

	var records []dto.Record
	if err := json.Unmarshal(body[1], &records); err != nil {
		return entity.RawSeries{}, fmt.Errorf("worldbank: parse records: %w", err)
	}

	points := make([]entity.RawPoint, 0, len(records))
	for _, r := range records {
		points = append(points, entity.RawPoint{Date: r.Date, Value: r.Value})
	}

	return entity.RawSeries{Kind: entity.KindPoints, Points: points}, nil
}
